package proofstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"turfbook/internal/pkg/config"
	"turfbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// LocalStore writes proof-of-payment uploads to a directory on disk and
// returns the public ref they are served under. Content is copied verbatim,
// never decoded.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(cfg config.MediaConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create media directory")
	}
	return &LocalStore{dir: cfg.Dir, baseURL: strings.TrimRight(cfg.BaseURL, "/")}, nil
}

func (s *LocalStore) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	name := uuid.New().String() + sanitizeExt(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", errs.Wrap(err, "failed to create proof file")
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(path)
		return "", errs.Wrap(err, "failed to write proof file")
	}
	return s.baseURL + "/" + name, nil
}

// sanitizeExt keeps only a short, path-safe extension from the uploaded name.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}

func (s *LocalStore) Dir() string { return s.dir }
