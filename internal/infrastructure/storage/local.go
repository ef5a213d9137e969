// Package storage implements the object bucket backing resume files. The
// store is filesystem-backed behind the ports.ObjectStore interface so a
// hosted bucket can replace it without touching the services.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// LocalStore keeps objects under root/<bucket>/<key>, write-once.
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Put(_ context.Context, bucket, key string, data []byte) error {
	path, err := s.path(bucket, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("storage: create bucket dir: %w", err)
	}

	// O_EXCL enforces write-once semantics.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return domain.ErrObjectExists
		}
		return fmt.Errorf("storage: create object: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("storage: write object: %w", err)
	}
	return nil
}

func (s *LocalStore) Get(_ context.Context, bucket, key string) ([]byte, error) {
	path, err := s.path(bucket, key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("storage: read object: %w", err)
	}
	return data, nil
}

func (s *LocalStore) PublicURL(bucket, key string) string {
	return s.baseURL + "/" + bucket + "/" + key
}

// path validates bucket and key against traversal before joining them under
// the root.
func (s *LocalStore) path(bucket, key string) (string, error) {
	if bucket == "" || key == "" {
		return "", domain.ErrObjectNotFound
	}
	cleaned := filepath.Clean(filepath.Join(bucket, key))
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", domain.ErrObjectNotFound
	}
	return filepath.Join(s.root, cleaned), nil
}
