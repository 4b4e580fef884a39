package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"chatmate/internal/models"
	"chatmate/internal/repositories"
)

var ErrConversationNotFound = errors.New("conversation not found")

type ConversationService interface {
	List() ([]models.Conversation, error)
	Get(id string) (*models.Conversation, error)
	Create(title string, convType models.ConversationType, context string) (*models.Conversation, error)
	Update(id string, title string, convType models.ConversationType, context string) (*models.Conversation, error)
	Delete(id string) error
	Search(query string) ([]models.Conversation, error)
	DeleteAll() error
}

type conversationService struct {
	repo repositories.ConversationRepository
}

func NewConversationService(repo repositories.ConversationRepository) ConversationService {
	return &conversationService{repo: repo}
}

// List returns every conversation, newest first.
func (s *conversationService) List() ([]models.Conversation, error) {
	return s.repo.Load()
}

func (s *conversationService) Get(id string) (*models.Conversation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("conversation id is required")
	}

	conversations, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	for i := range conversations {
		if conversations[i].ID == id {
			return &conversations[i], nil
		}
	}
	return nil, ErrConversationNotFound
}

func validateFields(title string, convType models.ConversationType, context string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", errors.New("conversation title is required")
	}
	if !convType.Valid() {
		return "", "", fmt.Errorf("unknown conversation type %q", convType)
	}
	context = strings.TrimSpace(context)
	if context == "" {
		return "", "", errors.New("conversation context is required")
	}
	return title, context, nil
}

// Create prepends a new conversation so the collection stays newest
// first. The whole collection is rewritten in one store call.
func (s *conversationService) Create(title string, convType models.ConversationType, context string) (*models.Conversation, error) {
	title, context, err := validateFields(title, convType, context)
	if err != nil {
		return nil, err
	}

	conversation := models.Conversation{
		ID:        newID(),
		Title:     title,
		Type:      convType,
		Context:   context,
		CreatedAt: time.Now(),
	}

	conversations, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	conversations = append([]models.Conversation{conversation}, conversations...)
	if err := s.repo.Store(conversations); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// Update replaces the three mutable fields in place. The id and the
// creation timestamp never change.
func (s *conversationService) Update(id string, title string, convType models.ConversationType, context string) (*models.Conversation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("conversation id is required")
	}
	title, context, err := validateFields(title, convType, context)
	if err != nil {
		return nil, err
	}

	conversations, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	for i := range conversations {
		if conversations[i].ID != id {
			continue
		}
		conversations[i].Title = title
		conversations[i].Type = convType
		conversations[i].Context = context
		if err := s.repo.Store(conversations); err != nil {
			return nil, err
		}
		return &conversations[i], nil
	}
	return nil, ErrConversationNotFound
}

// Delete removes the record if present. Deleting an absent id is a
// no-op, not an error.
func (s *conversationService) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("conversation id is required")
	}

	conversations, err := s.repo.Load()
	if err != nil {
		return err
	}
	remaining := conversations[:0]
	found := false
	for _, c := range conversations {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return nil
	}
	return s.repo.Store(remaining)
}

// Search matches the query case-insensitively against titles, contexts,
// and types. A blank query returns the full collection.
func (s *conversationService) Search(query string) ([]models.Conversation, error) {
	conversations, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return conversations, nil
	}

	matched := make([]models.Conversation, 0)
	for _, c := range conversations {
		if strings.Contains(strings.ToLower(c.Title), query) ||
			strings.Contains(strings.ToLower(c.Context), query) ||
			strings.Contains(strings.ToLower(string(c.Type)), query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (s *conversationService) DeleteAll() error {
	return s.repo.Store([]models.Conversation{})
}
