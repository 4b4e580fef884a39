package repositories

import (
	"encoding/json"
	"errors"
	"log"

	"chatmate/internal/models"
	"chatmate/internal/securestore"
)

const (
	userInfoKey   = "userInfo"
	onboardingKey = "hasCompletedOnboarding"
)

type UserProfileRepository interface {
	Get() (models.UserProfile, error)
	Store(profile models.UserProfile) error
	HasCompletedOnboarding() (bool, error)
	SetOnboardingComplete() error
	Clear() error
}

type userProfileRepository struct {
	store securestore.SecureStore
}

func NewUserProfileRepository(store securestore.SecureStore) UserProfileRepository {
	return &userProfileRepository{store: store}
}

// Get returns the stored profile; a missing or unreadable value degrades
// to the zero profile.
func (r *userProfileRepository) Get() (models.UserProfile, error) {
	data, err := r.store.Get(userInfoKey)
	if err != nil {
		if !errors.Is(err, securestore.ErrKeyNotFound) {
			log.Printf("user profile: read failed, treating as empty: %v", err)
		}
		return models.UserProfile{}, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("user profile: corrupt value, treating as empty: %v", err)
		return models.UserProfile{}, nil
	}
	return profile, nil
}

func (r *userProfileRepository) Store(profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return r.store.Set(userInfoKey, data)
}

// HasCompletedOnboarding reports whether the onboarding flag has been
// written. Any stored value other than "true" counts as not completed.
func (r *userProfileRepository) HasCompletedOnboarding() (bool, error) {
	data, err := r.store.Get(onboardingKey)
	if err != nil {
		if errors.Is(err, securestore.ErrKeyNotFound) {
			return false, nil
		}
		log.Printf("onboarding flag: read failed, treating as incomplete: %v", err)
		return false, nil
	}
	return string(data) == "true", nil
}

func (r *userProfileRepository) SetOnboardingComplete() error {
	return r.store.Set(onboardingKey, []byte("true"))
}

// Clear removes the profile and the onboarding flag. Missing keys are
// not an error.
func (r *userProfileRepository) Clear() error {
	for _, key := range []string{userInfoKey, onboardingKey} {
		if err := r.store.Delete(key); err != nil && !errors.Is(err, securestore.ErrKeyNotFound) {
			return err
		}
	}
	return nil
}
