package repositories

import (
	"encoding/json"
	"errors"
	"log"

	"chatmate/internal/models"
	"chatmate/internal/securestore"
)

const conversationsKey = "conversations"

// ConversationRepository persists the whole conversation collection as
// one JSON array under a single secure-store key. There is no per-record
// storage; every mutation rewrites the array in one Set.
type ConversationRepository interface {
	Load() ([]models.Conversation, error)
	Store(conversations []models.Conversation) error
}

type conversationRepository struct {
	store securestore.SecureStore
}

func NewConversationRepository(store securestore.SecureStore) ConversationRepository {
	return &conversationRepository{store: store}
}

// Load returns the stored collection. A missing key or an unreadable
// value both degrade to an empty collection; corruption is logged but
// never surfaced.
func (r *conversationRepository) Load() ([]models.Conversation, error) {
	data, err := r.store.Get(conversationsKey)
	if err != nil {
		if errors.Is(err, securestore.ErrKeyNotFound) {
			return []models.Conversation{}, nil
		}
		log.Printf("conversations: read failed, treating as empty: %v", err)
		return []models.Conversation{}, nil
	}

	var conversations []models.Conversation
	if err := json.Unmarshal(data, &conversations); err != nil {
		log.Printf("conversations: corrupt value, treating as empty: %v", err)
		return []models.Conversation{}, nil
	}
	return conversations, nil
}

// Store writes the full collection in a single serialized value.
func (r *conversationRepository) Store(conversations []models.Conversation) error {
	data, err := json.Marshal(conversations)
	if err != nil {
		return err
	}
	return r.store.Set(conversationsKey, data)
}
