package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"chatmate/internal/models"
)

// DefaultTemperature is used for every completion request.
const DefaultTemperature float32 = 0.7

var ErrEmptyCompletion = errors.New("completion returned no content")

// CompletionRequest carries everything one chat turn needs: the system
// preamble, the latest user message, and the tuning knobs resolved from
// the app settings. Earlier turns are not replayed.
type CompletionRequest struct {
	Model       string
	System      string
	UserMessage string
	MaxTokens   int
	Temperature float32
}

// CompletionClient wraps a chat model behind a single-shot request API.
type CompletionClient struct {
	chatModel model.BaseChatModel
}

// NewOpenAIClient builds a client backed by the OpenAI chat completions
// API. The per-request model option overrides the config default.
func NewOpenAIClient(ctx context.Context, apiKey string) (*CompletionClient, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey: apiKey,
		Model:  models.DefaultAppSettings().DefaultModel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create openai chat model: %w", err)
	}

	return &CompletionClient{chatModel: chatModel}, nil
}

// NewCompletionClient wraps an already constructed chat model.
func NewCompletionClient(chatModel model.BaseChatModel) *CompletionClient {
	return &CompletionClient{chatModel: chatModel}
}

// Complete performs one blocking completion round trip.
func (c *CompletionClient) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(req.System),
		schema.UserMessage(req.UserMessage),
	}

	opts := []model.Option{
		model.WithModel(req.Model),
		model.WithTemperature(req.Temperature),
	}
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}

	out, err := c.chatModel.Generate(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if out == nil || out.Content == "" {
		return "", ErrEmptyCompletion
	}
	return out.Content, nil
}

// BuildSystemMessage assembles the assistant preamble from the
// conversation context and the configured style and length directives.
func BuildSystemMessage(conversationContext string, style models.ResponseStyle, length models.ConversationLength) string {
	msg := "You are a helpful AI assistant. Context: " + conversationContext
	if d := style.Directive(); d != "" {
		msg += "\n\n" + d
	}
	if d := length.Directive(); d != "" {
		msg += "\n\n" + d
	}
	return msg
}
