package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"chatmate/internal/events"
	"chatmate/internal/models"
	"chatmate/internal/services"
	"chatmate/internal/utils"
)

const previewRunes = 80

// App struct
type App struct {
	ctx     context.Context
	svc     *services.Services
	dbClose func() error
}

// NewApp creates a new App application struct
func NewApp(svc *services.Services) *App {
	return &App{svc: svc}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// ConversationSummary is the list-view shape of a conversation.
type ConversationSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	TypeLabel string `json:"typeLabel"`
	Preview   string `json:"preview"`
	CreatedAt string `json:"createdAt"`
}

// ConversationTypeOption describes one selectable conversation type.
type ConversationTypeOption struct {
	Value          string `json:"value"`
	Label          string `json:"label"`
	DefaultContext string `json:"defaultContext"`
}

// GetConversations returns every conversation, newest first, shaped
// for the list view.
func (a *App) GetConversations() ([]ConversationSummary, error) {
	conversations, err := a.svc.Conversations.List()
	if err != nil {
		return nil, err
	}
	return a.summarize(conversations), nil
}

// SearchConversations filters the list by a case-insensitive query
// over titles and contexts.
func (a *App) SearchConversations(query string) ([]ConversationSummary, error) {
	conversations, err := a.svc.Conversations.Search(query)
	if err != nil {
		return nil, err
	}
	return a.summarize(conversations), nil
}

func (a *App) summarize(conversations []models.Conversation) []ConversationSummary {
	now := time.Now()
	summaries := make([]ConversationSummary, 0, len(conversations))
	for _, c := range conversations {
		summaries = append(summaries, ConversationSummary{
			ID:        c.ID,
			Title:     c.Title,
			Type:      string(c.Type),
			TypeLabel: c.Type.Label(),
			Preview:   utils.Preview(c.Context, previewRunes),
			CreatedAt: utils.FormatRelativeTime(c.CreatedAt, now),
		})
	}
	return summaries
}

// GetConversationTypes lists the selectable types with their prefilled
// contexts.
func (a *App) GetConversationTypes() []ConversationTypeOption {
	options := make([]ConversationTypeOption, 0, len(models.ConversationTypes))
	for _, t := range models.ConversationTypes {
		options = append(options, ConversationTypeOption{
			Value:          string(t),
			Label:          t.Label(),
			DefaultContext: t.DefaultContext(),
		})
	}
	return options
}

// CreateConversation adds a new thread. A blank context is prefilled
// from the type's default, matching the create form's behavior.
func (a *App) CreateConversation(title string, convType string, context string) (*models.Conversation, error) {
	t := models.ConversationType(convType)
	if strings.TrimSpace(context) == "" {
		context = t.DefaultContext()
	}
	conversation, err := a.svc.Conversations.Create(title, t, context)
	if err != nil {
		return nil, err
	}
	events.Emit(a.ctx, events.ConversationsChanged, events.NewSuccess("conversation created"))
	return conversation, nil
}

func (a *App) UpdateConversation(id string, title string, convType string, context string) (*models.Conversation, error) {
	conversation, err := a.svc.Conversations.Update(id, title, models.ConversationType(convType), context)
	if err != nil {
		return nil, err
	}
	events.Emit(a.ctx, events.ConversationsChanged, events.NewSuccess("conversation updated"))
	return conversation, nil
}

// DeleteConversation removes the conversation, its session log, and
// its archived history.
func (a *App) DeleteConversation(id string) error {
	if err := a.svc.Conversations.Delete(id); err != nil {
		return err
	}
	a.svc.Messages.Drop(id)
	if err := a.svc.History.PurgeConversation(a.ctx, id); err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to purge history for %s: %v", id, err))
	}
	events.Emit(a.ctx, events.ConversationsChanged, events.NewSuccess("conversation deleted"))
	return nil
}

// OpenConversation returns the visible message log, seeding it with
// the greeting on first open.
func (a *App) OpenConversation(id string) ([]models.Message, error) {
	conversation, err := a.svc.Conversations.Get(id)
	if err != nil {
		return nil, err
	}
	return a.svc.Messages.Open(conversation), nil
}

// SendMessage relays one user message and returns the assistant reply.
func (a *App) SendMessage(conversationID string, text string) (*models.Message, error) {
	return a.svc.Chat.Send(a.ctx, conversationID, text)
}

// GetMessages returns the current in-memory log of a conversation.
func (a *App) GetMessages(conversationID string) []models.Message {
	return a.svc.Messages.Messages(conversationID)
}

// GetConversationHistory returns the durable archive of a conversation.
func (a *App) GetConversationHistory(conversationID string) ([]models.Message, error) {
	return a.svc.History.ConversationHistory(a.ctx, conversationID)
}

// GetAppSettings returns the current application settings
func (a *App) GetAppSettings() (models.AppSettings, error) {
	return a.svc.Settings.Get()
}

// UpdateAppSettings validates and persists the settings, returning the
// stored value.
func (a *App) UpdateAppSettings(settings models.AppSettings) (models.AppSettings, error) {
	updated, err := a.svc.Settings.Update(settings)
	if err != nil {
		return models.AppSettings{}, err
	}
	events.Emit(a.ctx, events.SettingsChanged, events.NewSuccess("settings updated"))
	return updated, nil
}

func (a *App) ResetAppSettings() (models.AppSettings, error) {
	return a.svc.Settings.Reset()
}

// GetModelOptions lists the selectable chat models.
func (a *App) GetModelOptions() []models.ModelOption {
	return a.svc.Catalog.List()
}

func (a *App) GetOnboardingSteps() []models.OnboardingStep {
	return a.svc.Users.OnboardingSteps()
}

func (a *App) HasCompletedOnboarding() (bool, error) {
	return a.svc.Users.HasCompletedOnboarding()
}

func (a *App) CompleteOnboarding(profile models.UserProfile) error {
	return a.svc.Users.CompleteOnboarding(profile)
}

func (a *App) GetUserProfile() (models.UserProfile, error) {
	return a.svc.Users.Profile()
}

func (a *App) UpdateUserProfile(profile models.UserProfile) error {
	return a.svc.Users.UpdateProfile(profile)
}

func (a *App) IsAuthorized() bool {
	return a.svc.Users.IsAuthorized()
}

// SetAPIKey stores the OpenAI API key in the system keyring.
func (a *App) SetAPIKey(key string) error {
	return a.svc.Keys.SetAPIKey(key)
}

// HasAPIKey reports whether a key is stored without revealing it.
func (a *App) HasAPIKey() bool {
	return a.svc.Keys.HasAPIKey()
}

func (a *App) DeleteAPIKey() error {
	return a.svc.Keys.DeleteAPIKey()
}

// ClearAllData wipes conversations, history, profile, settings, and
// the stored API key.
func (a *App) ClearAllData() error {
	return a.svc.ClearAllData(a.ctx)
}
