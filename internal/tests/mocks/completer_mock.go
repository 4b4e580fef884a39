package mocks

import (
	"context"

	"chatmate/internal/llm/client"
)

type CompleterMock struct {
	CompleteFunc func(ctx context.Context, req *client.CompletionRequest) (string, error)

	// Requests records every request passed to Complete.
	Requests []*client.CompletionRequest
}

func (m *CompleterMock) Complete(ctx context.Context, req *client.CompletionRequest) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return "", nil
}
