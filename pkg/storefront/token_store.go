// pkg/storefront/token_store.go
package storefront

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the admin bearer token between runs. Load returns ""
// with no error when nothing is stored.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a file-backed token store at path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load reads the stored token. A missing file means no session.
func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating parent directories as needed.
func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the stored token. A missing file is not an error.
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// MemoryTokenStore keeps the token in memory only; the session is lost on
// restart. Useful for tests.
type MemoryTokenStore struct {
	token string
}

// NewMemoryTokenStore creates an in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Load returns the held token.
func (s *MemoryTokenStore) Load() (string, error) {
	return s.token, nil
}

// Save replaces the held token.
func (s *MemoryTokenStore) Save(token string) error {
	s.token = token
	return nil
}

// Clear drops the held token.
func (s *MemoryTokenStore) Clear() error {
	s.token = ""
	return nil
}
