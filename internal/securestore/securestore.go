package securestore

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/99designs/keyring"
)

const serviceName = "chatmate"

// ErrKeyNotFound is returned when a key has never been written.
var ErrKeyNotFound = errors.New("secure store: key not found")

// SecureStore is the device-local encrypted key-value store backing all
// durable records. Values are opaque bytes; callers own serialization.
type SecureStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

type keyringStore struct {
	ring keyring.Keyring
}

// Open returns a SecureStore backed by the OS keychain, falling back to
// an encrypted file store in the user config directory on headless
// systems.
func Open() (SecureStore, error) {
	fileDir, err := configDir()
	if err != nil {
		return nil, err
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName:      serviceName,
		FileDir:          filepath.Join(fileDir, "secrets"),
		FilePasswordFunc: keyring.FixedStringPrompt(serviceName),
	})
	if err != nil {
		return nil, err
	}
	return &keyringStore{ring: ring}, nil
}

func (s *keyringStore) Get(key string) ([]byte, error) {
	item, err := s.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return item.Data, nil
}

func (s *keyringStore) Set(key string, value []byte) error {
	return s.ring.Set(keyring.Item{Key: key, Data: value})
}

func (s *keyringStore) Delete(key string) error {
	if err := s.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

// memoryStore is an in-process SecureStore for tests.
type memoryStore struct {
	values map[string][]byte
}

// NewMemoryStore returns an empty in-memory SecureStore.
func NewMemoryStore() SecureStore {
	return &memoryStore{values: make(map[string][]byte)}
}

func (s *memoryStore) Get(key string) ([]byte, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (s *memoryStore) Set(key string, value []byte) error {
	copied := make([]byte, len(value))
	copy(copied, value)
	s.values[key] = copied
	return nil
}

func (s *memoryStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, serviceName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
