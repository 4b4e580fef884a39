package mocks

import (
	"context"

	"chatmate/internal/models"
)

type ArchiveRepositoryMock struct {
	AppendFunc               func(ctx context.Context, msg *models.ArchivedMessage) error
	ListByConversationFunc   func(ctx context.Context, conversationID string) ([]models.ArchivedMessage, error)
	DeleteByConversationFunc func(ctx context.Context, conversationID string) error
	DeleteAllFunc            func(ctx context.Context) error
}

func (m *ArchiveRepositoryMock) Append(ctx context.Context, msg *models.ArchivedMessage) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, msg)
	}
	return nil
}

func (m *ArchiveRepositoryMock) ListByConversation(ctx context.Context, conversationID string) ([]models.ArchivedMessage, error) {
	if m.ListByConversationFunc != nil {
		return m.ListByConversationFunc(ctx, conversationID)
	}
	return []models.ArchivedMessage{}, nil
}

func (m *ArchiveRepositoryMock) DeleteByConversation(ctx context.Context, conversationID string) error {
	if m.DeleteByConversationFunc != nil {
		return m.DeleteByConversationFunc(ctx, conversationID)
	}
	return nil
}

func (m *ArchiveRepositoryMock) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}
