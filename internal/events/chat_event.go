package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	ChatReply            = "events:chat:reply"
	ChatError            = "events:chat:error"
	ConversationsChanged = "events:conversations:changed"
	SettingsChanged      = "events:settings:changed"
)

// ChatEvent is the payload emitted to the frontend for chat activity.
type ChatEvent struct {
	ID             string            `json:"id"`
	Type           EventType         `json:"type"`
	ConversationID string            `json:"conversationId,omitempty"`
	Message        string            `json:"message"`
	Timestamp      time.Time         `json:"timestamp"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type contextKey string

const conversationContextKey contextKey = "chatmate/events/conversation"

// WithConversation returns a derived context annotated with the given
// conversation id so event emitters can automatically scope payloads.
func WithConversation(ctx context.Context, conversationID string) context.Context {
	if strings.TrimSpace(conversationID) == "" {
		return ctx
	}
	return context.WithValue(ctx, conversationContextKey, conversationID)
}

// ConversationFromContext extracts the conversation id associated with ctx.
func ConversationFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(conversationContextKey).(string); ok {
		return v
	}
	return ""
}

func CreateChatEvent(eventType EventType, message string) ChatEvent {
	return ChatEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info ChatEvent.
func NewInfo(message string) ChatEvent {
	return CreateChatEvent(EventInfo, message)
}

// NewError creates an error ChatEvent.
func NewError(message string) ChatEvent {
	return CreateChatEvent(EventError, message)
}

// NewSuccess creates a success ChatEvent.
func NewSuccess(message string) ChatEvent {
	return CreateChatEvent(EventSuccess, message)
}
