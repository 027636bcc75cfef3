package credstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists the session token in a single file, the desktop analog
// of the browser's well-known local-storage key. A missing file means
// unauthenticated.
type FileStore struct {
	path string
}

// NewFileStore creates a store at path. An empty path resolves to
// <user config dir>/crypto-wallet-client/token.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config dir: %w", err)
		}
		path = filepath.Join(base, "crypto-wallet-client", "token")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating credential dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load returns the stored token, or "" when none is persisted.
func (s *FileStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading credential file: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Save writes the token, readable by the owning user only.
func (s *FileStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing credential file: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an already-empty store is not
// an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing credential file: %w", err)
	}
	return nil
}
