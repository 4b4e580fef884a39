package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"chatmate/internal/events"
	"chatmate/internal/llm/client"
	"chatmate/internal/models"
	"chatmate/internal/repositories"
)

const (
	// FallbackReply is shown in place of a completion when the request
	// fails for any reason. The underlying error is logged, not surfaced.
	FallbackReply = "Sorry, I encountered an error. Please try again."

	// MissingKeyReply is shown when no API key has been stored yet. No
	// network request is attempted in that case.
	MissingKeyReply = "Please add your OpenAI API key to continue."
)

// ErrMissingCredential marks a send attempted before an API key was
// stored.
var ErrMissingCredential = errors.New("api key not configured")

// Completer is the slice of the completion client the chat service
// depends on.
type Completer interface {
	Complete(ctx context.Context, req *client.CompletionRequest) (string, error)
}

type ChatService interface {
	Send(ctx context.Context, conversationID string, text string) (*models.Message, error)
}

type chatService struct {
	conversations ConversationService
	messageLog    MessageLogService
	settings      AppSettingsService
	keys          KeyringService
	archive       repositories.ArchiveRepository

	newCompleter func(ctx context.Context, apiKey string) (Completer, error)

	mu        sync.Mutex
	completer Completer
	activeKey string
}

func NewChatService(
	conversations ConversationService,
	messageLog MessageLogService,
	settings AppSettingsService,
	keys KeyringService,
	archive repositories.ArchiveRepository,
) ChatService {
	return &chatService{
		conversations: conversations,
		messageLog:    messageLog,
		settings:      settings,
		keys:          keys,
		archive:       archive,
		newCompleter: func(ctx context.Context, apiKey string) (Completer, error) {
			return client.NewOpenAIClient(ctx, apiKey)
		},
	}
}

// NewChatServiceWithCompleter is like NewChatService but pins a fixed
// completion client instead of building one from the stored API key.
func NewChatServiceWithCompleter(
	conversations ConversationService,
	messageLog MessageLogService,
	settings AppSettingsService,
	keys KeyringService,
	archive repositories.ArchiveRepository,
	completer Completer,
) ChatService {
	s := NewChatService(conversations, messageLog, settings, keys, archive).(*chatService)
	s.newCompleter = func(context.Context, string) (Completer, error) {
		return completer, nil
	}
	return s
}

// Send appends the user's message to the conversation log, requests one
// completion for it, and appends the reply. Only the latest user
// message is sent upstream; earlier turns are carried through the
// system preamble's context, not replayed.
func (s *chatService) Send(ctx context.Context, conversationID string, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("message text is required")
	}

	conversation, err := s.conversations.Get(conversationID)
	if err != nil {
		return nil, err
	}

	ctx = events.WithConversation(ctx, conversation.ID)

	userMsg := models.Message{
		ID:        newID(),
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: time.Now(),
	}
	s.messageLog.Append(conversation.ID, userMsg)
	s.archiveMessage(ctx, conversation.ID, userMsg)

	reply := models.Message{
		ID:        newID(),
		Text:      s.replyText(ctx, conversation, text),
		Sender:    models.SenderAssistant,
		Timestamp: time.Now(),
	}
	s.messageLog.Append(conversation.ID, reply)
	s.archiveMessage(ctx, conversation.ID, reply)

	return &reply, nil
}

// replyText maps the completion outcome to the visible reply per the
// degrade policy: missing credential and transport failures both turn
// into fixed strings, never into surfaced errors.
func (s *chatService) replyText(ctx context.Context, conversation *models.Conversation, text string) string {
	content, err := s.complete(ctx, conversation, text)
	switch {
	case err == nil:
		events.Emit(ctx, events.ChatReply, events.NewSuccess(content))
		return content
	case errors.Is(err, ErrMissingCredential):
		return MissingKeyReply
	default:
		log.Printf("chat: completion failed: %v", err)
		events.Emit(ctx, events.ChatError, events.NewError(err.Error()))
		return FallbackReply
	}
}

// complete fails fast with ErrMissingCredential before any network
// activity.
func (s *chatService) complete(ctx context.Context, conversation *models.Conversation, text string) (string, error) {
	apiKey, err := s.keys.GetAPIKey()
	if err != nil {
		log.Printf("chat: failed to read api key: %v", err)
		return "", ErrMissingCredential
	}
	if apiKey == "" {
		return "", ErrMissingCredential
	}

	settings, err := s.settings.Get()
	if err != nil {
		log.Printf("chat: failed to load settings: %v", err)
		settings = models.DefaultAppSettings()
	}

	completer, err := s.completerFor(ctx, apiKey)
	if err != nil {
		return "", err
	}

	return completer.Complete(ctx, &client.CompletionRequest{
		Model:       settings.DefaultModel,
		System:      client.BuildSystemMessage(conversation.Context, settings.ResponseStyle, settings.ConversationLength),
		UserMessage: text,
		MaxTokens:   settings.ConversationLength.MaxTokens(),
		Temperature: client.DefaultTemperature,
	})
}

// completerFor reuses the cached client until the stored key changes.
func (s *chatService) completerFor(ctx context.Context, apiKey string) (Completer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completer != nil && s.activeKey == apiKey {
		return s.completer, nil
	}

	completer, err := s.newCompleter(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	s.completer = completer
	s.activeKey = apiKey
	return completer, nil
}

func (s *chatService) archiveMessage(ctx context.Context, conversationID string, msg models.Message) {
	if s.archive == nil {
		return
	}
	record := &models.ArchivedMessage{
		ConversationID: conversationID,
		MessageID:      msg.ID,
		Sender:         string(msg.Sender),
		Text:           msg.Text,
		SentAt:         msg.Timestamp,
	}
	if err := s.archive.Append(ctx, record); err != nil {
		log.Printf("chat: failed to archive message %s: %v", msg.ID, err)
	}
}
