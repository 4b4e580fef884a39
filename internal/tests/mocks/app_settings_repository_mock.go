package mocks

import (
	"chatmate/internal/models"
)

type AppSettingsRepositoryMock struct {
	GetFunc    func() (models.AppSettings, error)
	UpdateFunc func(settings models.AppSettings) error
	ClearFunc  func() error
}

func (m *AppSettingsRepositoryMock) Get() (models.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	return models.DefaultAppSettings(), nil
}

func (m *AppSettingsRepositoryMock) Update(settings models.AppSettings) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(settings)
	}
	return nil
}

func (m *AppSettingsRepositoryMock) Clear() error {
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}
