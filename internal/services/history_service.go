package services

import (
	"context"
	"errors"
	"strings"

	"chatmate/internal/models"
	"chatmate/internal/repositories"
)

// HistoryService reads the durable message archive. The archive is
// append-only history; it never feeds the in-memory session log.
type HistoryService interface {
	ConversationHistory(ctx context.Context, conversationID string) ([]models.Message, error)
	PurgeConversation(ctx context.Context, conversationID string) error
	PurgeAll(ctx context.Context) error
}

type historyService struct {
	archive repositories.ArchiveRepository
}

func NewHistoryService(archive repositories.ArchiveRepository) HistoryService {
	return &historyService{archive: archive}
}

// ConversationHistory returns the archived exchange in send order.
func (s *historyService) ConversationHistory(ctx context.Context, conversationID string) ([]models.Message, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, errors.New("conversation id is required")
	}

	records, err := s.archive.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0, len(records))
	for _, rec := range records {
		messages = append(messages, models.Message{
			ID:        rec.MessageID,
			Text:      rec.Text,
			Sender:    models.Sender(rec.Sender),
			Timestamp: rec.SentAt,
		})
	}
	return messages, nil
}

func (s *historyService) PurgeConversation(ctx context.Context, conversationID string) error {
	if strings.TrimSpace(conversationID) == "" {
		return errors.New("conversation id is required")
	}
	return s.archive.DeleteByConversation(ctx, conversationID)
}

func (s *historyService) PurgeAll(ctx context.Context) error {
	return s.archive.DeleteAll(ctx)
}
