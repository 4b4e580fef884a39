package client

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"chatmate/internal/models"
)

type fakeChatModel struct {
	generateFunc func(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error)
	lastInput    []*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.lastInput = in
	if f.generateFunc != nil {
		return f.generateFunc(ctx, in, opts...)
	}
	return schema.AssistantMessage("ok", nil), nil
}

func (f *fakeChatModel) Stream(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func TestComplete_MessageAssembly(t *testing.T) {
	fake := &fakeChatModel{}
	c := NewCompletionClient(fake)

	content, err := c.Complete(context.Background(), &CompletionRequest{
		Model:       "gpt-4",
		System:      "You are a helpful AI assistant. Context: testing",
		UserMessage: "Hello",
		MaxTokens:   500,
		Temperature: DefaultTemperature,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "ok" {
		t.Fatalf("got %q, want %q", content, "ok")
	}

	if len(fake.lastInput) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(fake.lastInput))
	}
	if fake.lastInput[0].Role != schema.System {
		t.Fatalf("first message should be the system preamble, got role %q", fake.lastInput[0].Role)
	}
	if fake.lastInput[1].Role != schema.User || fake.lastInput[1].Content != "Hello" {
		t.Fatalf("second message should be the user turn, got %+v", fake.lastInput[1])
	}
}

func TestComplete_EmptyContent(t *testing.T) {
	fake := &fakeChatModel{
		generateFunc: func(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error) {
			return schema.AssistantMessage("", nil), nil
		},
	}
	c := NewCompletionClient(fake)

	_, err := c.Complete(context.Background(), &CompletionRequest{UserMessage: "Hello"})
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestComplete_GenerateError(t *testing.T) {
	fake := &fakeChatModel{
		generateFunc: func(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error) {
			return nil, errors.New("upstream unavailable")
		},
	}
	c := NewCompletionClient(fake)

	_, err := c.Complete(context.Background(), &CompletionRequest{UserMessage: "Hello"})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	_, err := NewOpenAIClient(context.Background(), "")
	if err == nil {
		t.Fatal("expected an error for an empty api key")
	}
}

func TestBuildSystemMessage(t *testing.T) {
	got := BuildSystemMessage("Plan a hiking trip", models.StyleFriendly, models.LengthMedium)
	want := "You are a helpful AI assistant. Context: Plan a hiking trip\n\n" +
		"Please respond in a friendly, warm, and approachable manner.\n\n" +
		"Provide balanced responses with moderate detail."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuildSystemMessage_UnknownDirectivesOmitted(t *testing.T) {
	got := BuildSystemMessage("testing", models.ResponseStyle("Sarcastic"), models.ConversationLength("Epic"))
	want := "You are a helpful AI assistant. Context: testing"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
