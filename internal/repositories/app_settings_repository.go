package repositories

import (
	"encoding/json"
	"errors"
	"log"

	"chatmate/internal/models"
	"chatmate/internal/securestore"
)

const appSettingsKey = "app_settings"

type AppSettingsRepository interface {
	Get() (models.AppSettings, error)
	Update(settings models.AppSettings) error
	Clear() error
}

type appSettingsRepository struct {
	store securestore.SecureStore
}

func NewAppSettingsRepository(store securestore.SecureStore) AppSettingsRepository {
	return &appSettingsRepository{store: store}
}

// Get returns the stored settings, or the defaults if nothing valid is
// stored.
func (r *appSettingsRepository) Get() (models.AppSettings, error) {
	data, err := r.store.Get(appSettingsKey)
	if err != nil {
		if !errors.Is(err, securestore.ErrKeyNotFound) {
			log.Printf("app settings: read failed, using defaults: %v", err)
		}
		return models.DefaultAppSettings(), nil
	}

	var settings models.AppSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("app settings: corrupt value, using defaults: %v", err)
		return models.DefaultAppSettings(), nil
	}
	return settings, nil
}

func (r *appSettingsRepository) Update(settings models.AppSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return r.store.Set(appSettingsKey, data)
}

// Clear removes the stored settings so the next Get falls back to the
// defaults.
func (r *appSettingsRepository) Clear() error {
	err := r.store.Delete(appSettingsKey)
	if errors.Is(err, securestore.ErrKeyNotFound) {
		return nil
	}
	return err
}
