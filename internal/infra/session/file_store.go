// Package session persists the bearer token between runs of the gateway.
package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"clinica/config"
	"clinica/internal/domain/repository"
)

// fileStore keeps the token in a single file under a well-known path.
// It is the Go counterpart of the browser's localStorage slot.
type fileStore struct {
	path string
}

// NewFileStore is the constructor for fileStore.
func NewFileStore(cfg *config.Config) repository.TokenStore {
	return &fileStore{path: cfg.Session.TokenPath}
}

// Save writes the token, replacing any previous one.
func (s *fileStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create token directory")
	}

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "failed to write token file")
	}

	return nil
}

// Load reads the persisted token. A missing file means "no session" and
// returns the empty string without error.
func (s *fileStore) Load(_ context.Context) (string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read token file")
	}

	return strings.TrimSpace(string(raw)), nil
}

// Clear removes the persisted token. Removing an absent file is not an error.
func (s *fileStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove token file")
	}

	return nil
}
