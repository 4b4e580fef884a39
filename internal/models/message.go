package models

import "time"

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	// SenderAssistant serializes as "ai" for stored-data continuity.
	SenderAssistant Sender = "ai"
)

// Message is a single chat turn. Messages live in the in-memory session
// log only; ordering is insertion order, timestamps are informational.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
