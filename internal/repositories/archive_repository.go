package repositories

import (
	"context"

	"gorm.io/gorm"

	"chatmate/internal/models"
)

type ArchiveRepository interface {
	Append(ctx context.Context, msg *models.ArchivedMessage) error
	ListByConversation(ctx context.Context, conversationID string) ([]models.ArchivedMessage, error)
	DeleteByConversation(ctx context.Context, conversationID string) error
	DeleteAll(ctx context.Context) error
}

type archiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) Append(ctx context.Context, msg *models.ArchivedMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *archiveRepository) ListByConversation(ctx context.Context, conversationID string) ([]models.ArchivedMessage, error) {
	var messages []models.ArchivedMessage
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *archiveRepository) DeleteByConversation(ctx context.Context, conversationID string) error {
	return r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Delete(&models.ArchivedMessage{}).Error
}

func (r *archiveRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.ArchivedMessage{}).Error
}
