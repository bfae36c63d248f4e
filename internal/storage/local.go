package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// localStore implements ImageStore on a local directory. Used when S3 is
// disabled, typically in development.
type localStore struct {
	dir       string
	publicURL string
	logger    zerolog.Logger
}

// NewLocalStore creates a new directory-backed image store.
func NewLocalStore(dir, publicURL string, logger zerolog.Logger) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	if publicURL == "" {
		publicURL = "/uploads"
	}

	return &localStore{
		dir:       dir,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		logger:    logger.With().Str("component", "local-image-store").Logger(),
	}, nil
}

// Upload stores the image under the given key and returns its public URL.
func (s *localStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	path := filepath.Join(s.dir, filepath.Clean("/"+key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	f, err := os.Create(path)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to create upload file")
		return "", fmt.Errorf("failed to create upload file %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write upload file")
		return "", fmt.Errorf("failed to write upload file %s: %w", key, err)
	}

	url := s.publicURL + "/" + strings.TrimPrefix(key, "/")
	s.logger.Debug().Str("key", key).Str("url", url).Msg("image stored locally")
	return url, nil
}
