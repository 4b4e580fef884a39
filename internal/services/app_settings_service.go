package services

import (
	"fmt"

	"chatmate/internal/models"
	"chatmate/internal/repositories"
)

type AppSettingsService interface {
	Get() (models.AppSettings, error)
	Update(settings models.AppSettings) (models.AppSettings, error)
	Reset() (models.AppSettings, error)
}

type appSettingsService struct {
	repo    repositories.AppSettingsRepository
	catalog ModelCatalogService
}

func NewAppSettingsService(repo repositories.AppSettingsRepository, catalog ModelCatalogService) AppSettingsService {
	return &appSettingsService{repo: repo, catalog: catalog}
}

func (s *appSettingsService) Get() (models.AppSettings, error) {
	return s.repo.Get()
}

// Update validates every field against the closed sets before
// persisting. Invalid input is rejected rather than coerced.
func (s *appSettingsService) Update(settings models.AppSettings) (models.AppSettings, error) {
	if !s.catalog.Contains(settings.DefaultModel) {
		return models.AppSettings{}, fmt.Errorf("unknown model %q", settings.DefaultModel)
	}
	if !settings.ResponseStyle.Valid() {
		return models.AppSettings{}, fmt.Errorf("unknown response style %q", settings.ResponseStyle)
	}
	if !settings.ConversationLength.Valid() {
		return models.AppSettings{}, fmt.Errorf("unknown conversation length %q", settings.ConversationLength)
	}

	if err := s.repo.Update(settings); err != nil {
		return models.AppSettings{}, err
	}
	return settings, nil
}

func (s *appSettingsService) Reset() (models.AppSettings, error) {
	defaults := models.DefaultAppSettings()
	if err := s.repo.Update(defaults); err != nil {
		return models.AppSettings{}, err
	}
	return defaults, nil
}
