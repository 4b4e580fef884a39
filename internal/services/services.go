package services

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"chatmate/internal/repositories"
	"chatmate/internal/securestore"
)

// Services aggregates every domain service behind one container. The
// container owns the wiring; callers only see the service interfaces.
type Services struct {
	Conversations ConversationService
	Messages      MessageLogService
	Settings      AppSettingsService
	Users         UserService
	Keys          KeyringService
	Chat          ChatService
	History       HistoryService
	Catalog       ModelCatalogService

	profiles repositories.UserProfileRepository
	settings repositories.AppSettingsRepository
}

// NewServices constructs the full service graph on top of the secure
// store, the plain flag store, and the archive database.
func NewServices(store securestore.SecureStore, flags *securestore.FlagStore, db *gorm.DB) (*Services, error) {
	catalog, err := NewModelCatalogService()
	if err != nil {
		return nil, fmt.Errorf("load model catalog: %w", err)
	}

	conversationRepo := repositories.NewConversationRepository(store)
	settingsRepo := repositories.NewAppSettingsRepository(store)
	profileRepo := repositories.NewUserProfileRepository(store)
	archiveRepo := repositories.NewArchiveRepository(db)

	conversations := NewConversationService(conversationRepo)
	messages := NewMessageLogService()
	settings := NewAppSettingsService(settingsRepo, catalog)
	keys := NewKeyringService(store)

	return &Services{
		Conversations: conversations,
		Messages:      messages,
		Settings:      settings,
		Users:         NewUserService(profileRepo, flags),
		Keys:          keys,
		Chat:          NewChatService(conversations, messages, settings, keys, archiveRepo),
		History:       NewHistoryService(archiveRepo),
		Catalog:       catalog,

		profiles: profileRepo,
		settings: settingsRepo,
	}, nil
}

// ClearAllData wipes every stored artifact: conversations, the session
// logs, the archive, the profile and onboarding state, the settings,
// and the API key. Partial failures are logged and the wipe continues.
func (s *Services) ClearAllData(ctx context.Context) error {
	var firstErr error
	record := func(step string, err error) {
		if err == nil {
			return
		}
		log.Printf("clear all data: %s failed: %v", step, err)
		if firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", step, err)
		}
	}

	record("delete conversations", s.Conversations.DeleteAll())
	s.Messages.Clear()
	record("purge archive", s.History.PurgeAll(ctx))
	record("clear profile", s.profiles.Clear())
	record("clear settings", s.settings.Clear())
	record("delete api key", s.Keys.DeleteAPIKey())
	record("deauthorize", s.Users.Deauthorize())

	return firstErr
}
