package services

import (
	"errors"
	"strings"

	"chatmate/internal/securestore"
)

const apiKeyName = "openai_api_key"

// KeyringService holds custody of the OpenAI API key. The key never
// leaves the secure store except to authenticate completion requests.
type KeyringService interface {
	SetAPIKey(key string) error
	GetAPIKey() (string, error)
	HasAPIKey() bool
	DeleteAPIKey() error
}

type keyringService struct {
	store securestore.SecureStore
}

func NewKeyringService(store securestore.SecureStore) KeyringService {
	return &keyringService{store: store}
}

func (s *keyringService) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("api key is empty")
	}
	return s.store.Set(apiKeyName, []byte(key))
}

// GetAPIKey returns the stored key, or an empty string when none has
// been saved.
func (s *keyringService) GetAPIKey() (string, error) {
	data, err := s.store.Get(apiKeyName)
	if err != nil {
		if errors.Is(err, securestore.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (s *keyringService) HasAPIKey() bool {
	key, err := s.GetAPIKey()
	return err == nil && key != ""
}

func (s *keyringService) DeleteAPIKey() error {
	err := s.store.Delete(apiKeyName)
	if errors.Is(err, securestore.ErrKeyNotFound) {
		return nil
	}
	return err
}
