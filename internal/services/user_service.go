package services

import (
	"errors"
	"strings"

	"chatmate/internal/models"
	"chatmate/internal/repositories"
	"chatmate/internal/securestore"
)

const authorizedFlag = "authorized"

type UserService interface {
	Profile() (models.UserProfile, error)
	UpdateProfile(profile models.UserProfile) error
	OnboardingSteps() []models.OnboardingStep
	CompleteOnboarding(profile models.UserProfile) error
	HasCompletedOnboarding() (bool, error)
	Authorize() error
	IsAuthorized() bool
	Deauthorize() error
}

type userService struct {
	profiles repositories.UserProfileRepository
	flags    *securestore.FlagStore
}

func NewUserService(profiles repositories.UserProfileRepository, flags *securestore.FlagStore) UserService {
	return &userService{profiles: profiles, flags: flags}
}

func (s *userService) Profile() (models.UserProfile, error) {
	return s.profiles.Get()
}

func (s *userService) UpdateProfile(profile models.UserProfile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return errors.New("name is required")
	}
	return s.profiles.Store(profile)
}

func (s *userService) OnboardingSteps() []models.OnboardingStep {
	steps := make([]models.OnboardingStep, len(models.OnboardingSteps))
	copy(steps, models.OnboardingSteps)
	return steps
}

// CompleteOnboarding stores the collected profile, marks onboarding as
// done, and authorizes the session in one pass.
func (s *userService) CompleteOnboarding(profile models.UserProfile) error {
	if err := s.UpdateProfile(profile); err != nil {
		return err
	}
	if err := s.profiles.SetOnboardingComplete(); err != nil {
		return err
	}
	return s.Authorize()
}

func (s *userService) Authorize() error {
	return s.flags.SetFlag(authorizedFlag, "true")
}

func (s *userService) HasCompletedOnboarding() (bool, error) {
	return s.profiles.HasCompletedOnboarding()
}

// IsAuthorized reads the session flag. The flag is deliberately kept in
// plain storage, not the secure store.
func (s *userService) IsAuthorized() bool {
	value, err := s.flags.GetFlag(authorizedFlag)
	return err == nil && value == "true"
}

func (s *userService) Deauthorize() error {
	return s.flags.DeleteFlag(authorizedFlag)
}
