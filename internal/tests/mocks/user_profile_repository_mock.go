package mocks

import (
	"chatmate/internal/models"
)

type UserProfileRepositoryMock struct {
	GetFunc                    func() (models.UserProfile, error)
	StoreFunc                  func(profile models.UserProfile) error
	HasCompletedOnboardingFunc func() (bool, error)
	SetOnboardingCompleteFunc  func() error
	ClearFunc                  func() error
}

func (m *UserProfileRepositoryMock) Get() (models.UserProfile, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	return models.UserProfile{}, nil
}

func (m *UserProfileRepositoryMock) Store(profile models.UserProfile) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(profile)
	}
	return nil
}

func (m *UserProfileRepositoryMock) HasCompletedOnboarding() (bool, error) {
	if m.HasCompletedOnboardingFunc != nil {
		return m.HasCompletedOnboardingFunc()
	}
	return false, nil
}

func (m *UserProfileRepositoryMock) SetOnboardingComplete() error {
	if m.SetOnboardingCompleteFunc != nil {
		return m.SetOnboardingCompleteFunc()
	}
	return nil
}

func (m *UserProfileRepositoryMock) Clear() error {
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}
