package unit_tests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"chatmate/internal/llm/client"
	"chatmate/internal/models"
	"chatmate/internal/securestore"
	"chatmate/internal/services"
	"chatmate/internal/tests/mocks"
	"chatmate/internal/tests/utils"
)

type chatFixture struct {
	service   services.ChatService
	messages  services.MessageLogService
	completer *mocks.CompleterMock
	archive   *mocks.ArchiveRepositoryMock
	archived  *[]models.ArchivedMessage
}

func newChatFixture(t *testing.T, withKey bool, completer *mocks.CompleterMock) *chatFixture {
	t.Helper()

	conversationRepo := &mocks.ConversationRepositoryMock{
		LoadFunc: func() ([]models.Conversation, error) {
			return []models.Conversation{
				{ID: "c1", Title: "Trip planning", Type: models.TypePersonal, Context: "Plan a hiking trip", CreatedAt: time.Now()},
			}, nil
		},
	}

	store := securestore.NewMemoryStore()
	keys := services.NewKeyringService(store)
	if withKey {
		utils.NilError(t, keys.SetAPIKey("sk-test"))
	}

	archived := []models.ArchivedMessage{}
	archive := &mocks.ArchiveRepositoryMock{
		AppendFunc: func(ctx context.Context, msg *models.ArchivedMessage) error {
			archived = append(archived, *msg)
			return nil
		},
	}

	catalog, err := services.NewModelCatalogService()
	utils.NilError(t, err)

	messages := services.NewMessageLogService()
	service := services.NewChatServiceWithCompleter(
		services.NewConversationService(conversationRepo),
		messages,
		services.NewAppSettingsService(&mocks.AppSettingsRepositoryMock{}, catalog),
		keys,
		archive,
		completer,
	)

	return &chatFixture{
		service:   service,
		messages:  messages,
		completer: completer,
		archive:   archive,
		archived:  &archived,
	}
}

func TestChatService_Send_Success(t *testing.T) {
	completer := &mocks.CompleterMock{
		CompleteFunc: func(ctx context.Context, req *client.CompletionRequest) (string, error) {
			return "The Rockies are lovely in September.", nil
		},
	}
	fixture := newChatFixture(t, true, completer)

	reply, err := fixture.service.Send(context.Background(), "c1", "Where should I hike?")
	utils.NilError(t, err)
	utils.Equal(t, reply.Text, "The Rockies are lovely in September.")
	utils.Equal(t, reply.Sender, models.SenderAssistant)

	log := fixture.messages.Messages("c1")
	utils.Equal(t, len(log), 2)
	utils.Equal(t, log[0].Sender, models.SenderUser)
	utils.Equal(t, log[0].Text, "Where should I hike?")
	utils.Equal(t, log[1].Text, reply.Text)
}

func TestChatService_Send_RequestShape(t *testing.T) {
	completer := &mocks.CompleterMock{
		CompleteFunc: func(ctx context.Context, req *client.CompletionRequest) (string, error) {
			return "ok", nil
		},
	}
	fixture := newChatFixture(t, true, completer)

	_, err := fixture.service.Send(context.Background(), "c1", "Where should I hike?")
	utils.NilError(t, err)

	utils.Equal(t, len(completer.Requests), 1)
	req := completer.Requests[0]
	utils.Equal(t, req.Model, "gpt-3.5-turbo")
	utils.Equal(t, req.MaxTokens, 500)
	utils.Equal(t, req.Temperature, client.DefaultTemperature)
	utils.Equal(t, req.UserMessage, "Where should I hike?")
	if !strings.Contains(req.System, "Context: Plan a hiking trip") {
		t.Fatalf("system message missing conversation context: %q", req.System)
	}
	if !strings.Contains(req.System, "friendly, warm, and approachable") {
		t.Fatalf("system message missing style directive: %q", req.System)
	}
	if !strings.Contains(req.System, "moderate detail") {
		t.Fatalf("system message missing length directive: %q", req.System)
	}
}

func TestChatService_Send_MissingKey(t *testing.T) {
	completer := &mocks.CompleterMock{}
	fixture := newChatFixture(t, false, completer)

	reply, err := fixture.service.Send(context.Background(), "c1", "Hello")
	utils.NilError(t, err)
	utils.Equal(t, reply.Text, services.MissingKeyReply)
	utils.Equal(t, len(completer.Requests), 0)
}

func TestChatService_Send_CompletionFailure(t *testing.T) {
	completer := &mocks.CompleterMock{
		CompleteFunc: func(ctx context.Context, req *client.CompletionRequest) (string, error) {
			return "", errors.New("rate limited")
		},
	}
	fixture := newChatFixture(t, true, completer)

	reply, err := fixture.service.Send(context.Background(), "c1", "Hello")
	utils.NilError(t, err)
	utils.Equal(t, reply.Text, services.FallbackReply)

	// the failed exchange is still recorded in full
	log := fixture.messages.Messages("c1")
	utils.Equal(t, len(log), 2)
}

func TestChatService_Send_EmptyText(t *testing.T) {
	fixture := newChatFixture(t, true, &mocks.CompleterMock{})

	_, err := fixture.service.Send(context.Background(), "c1", "   ")
	utils.Equal(t, err.Error(), "message text is required")
}

func TestChatService_Send_UnknownConversation(t *testing.T) {
	fixture := newChatFixture(t, true, &mocks.CompleterMock{})

	_, err := fixture.service.Send(context.Background(), "missing", "Hello")
	if !errors.Is(err, services.ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestChatService_Send_ArchivesBothMessages(t *testing.T) {
	completer := &mocks.CompleterMock{
		CompleteFunc: func(ctx context.Context, req *client.CompletionRequest) (string, error) {
			return "archived reply", nil
		},
	}
	fixture := newChatFixture(t, true, completer)

	_, err := fixture.service.Send(context.Background(), "c1", "Hello")
	utils.NilError(t, err)

	archived := *fixture.archived
	utils.Equal(t, len(archived), 2)
	utils.Equal(t, archived[0].Sender, "user")
	utils.Equal(t, archived[0].Text, "Hello")
	utils.Equal(t, archived[1].Sender, "ai")
	utils.Equal(t, archived[1].Text, "archived reply")
	utils.Equal(t, archived[0].ConversationID, "c1")
}
