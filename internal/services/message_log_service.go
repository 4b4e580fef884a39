package services

import (
	"fmt"
	"sync"
	"time"

	"chatmate/internal/models"
)

// MessageLogService keeps the visible message log of each open
// conversation. Logs live in memory only; every open discards prior
// history and starts from a fresh greeting.
type MessageLogService interface {
	Open(conversation *models.Conversation) []models.Message
	Append(conversationID string, msg models.Message)
	Messages(conversationID string) []models.Message
	Drop(conversationID string)
	Clear()
}

type messageLogService struct {
	mu   sync.RWMutex
	logs map[string][]models.Message
}

func NewMessageLogService() MessageLogService {
	return &messageLogService{logs: make(map[string][]models.Message)}
}

// Open replaces any existing log with a single fresh greeting and
// returns a copy of it. Prior in-memory history does not survive a
// reopen; only the durable archive keeps the full exchange.
func (s *messageLogService) Open(conversation *models.Conversation) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs[conversation.ID] = []models.Message{greetingFor(conversation)}
	return copyMessages(s.logs[conversation.ID])
}

func (s *messageLogService) Append(conversationID string, msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[conversationID] = append(s.logs[conversationID], msg)
}

func (s *messageLogService) Messages(conversationID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMessages(s.logs[conversationID])
}

func (s *messageLogService) Drop(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.logs, conversationID)
}

func (s *messageLogService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = make(map[string][]models.Message)
}

func greetingFor(conversation *models.Conversation) models.Message {
	return models.Message{
		ID:        newID(),
		Text:      fmt.Sprintf("Hi! I'm here to help you with \"%s\". How can I assist you today?", conversation.Title),
		Sender:    models.SenderAssistant,
		Timestamp: time.Now(),
	}
}

func copyMessages(messages []models.Message) []models.Message {
	out := make([]models.Message, len(messages))
	copy(out, messages)
	return out
}
