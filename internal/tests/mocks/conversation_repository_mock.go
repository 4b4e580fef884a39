package mocks

import (
	"chatmate/internal/models"
)

type ConversationRepositoryMock struct {
	LoadFunc  func() ([]models.Conversation, error)
	StoreFunc func(conversations []models.Conversation) error
}

func (m *ConversationRepositoryMock) Load() ([]models.Conversation, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return []models.Conversation{}, nil
}

func (m *ConversationRepositoryMock) Store(conversations []models.Conversation) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(conversations)
	}
	return nil
}
