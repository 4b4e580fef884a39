package models

import "time"

// ArchivedMessage is the durable copy of an exchanged message. The
// session log itself is never persisted; the archive is write-through
// history that the visible log never reads back.
type ArchivedMessage struct {
	ID             uint   `gorm:"primaryKey"`
	ConversationID string `gorm:"size:64;not null;index:idx_archive_conversation"`
	MessageID      string `gorm:"size:64;not null"`
	Sender         string `gorm:"size:16;not null"`
	Text           string `gorm:"type:text"`
	SentAt         time.Time
	CreatedAt      time.Time
}
