package securestore

import (
	"os"
	"path/filepath"
)

// FlagStore persists simple flags in a plain file under the app config
// directory. It deliberately offers weaker guarantees than SecureStore;
// the only tenant is the "authorized" flag.
type FlagStore struct {
	dir string
}

// OpenFlagStore returns a FlagStore rooted at the app config directory.
func OpenFlagStore() (*FlagStore, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return &FlagStore{dir: dir}, nil
}

// NewFlagStoreWithDir returns a FlagStore rooted at dir, for tests.
func NewFlagStoreWithDir(dir string) *FlagStore {
	return &FlagStore{dir: dir}
}

// GetFlag returns the stored value for name, or "" if absent.
func (s *FlagStore) GetFlag(name string) (string, error) {
	data, err := os.ReadFile(s.flagPath(name))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SetFlag stores value for name.
func (s *FlagStore) SetFlag(name, value string) error {
	return os.WriteFile(s.flagPath(name), []byte(value), 0644)
}

// DeleteFlag removes name; absent flags are not an error.
func (s *FlagStore) DeleteFlag(name string) error {
	err := os.Remove(s.flagPath(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FlagStore) flagPath(name string) string {
	return filepath.Join(s.dir, name+".flag")
}
