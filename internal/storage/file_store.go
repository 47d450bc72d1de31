package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/sandeepkv93/tuido/internal/model"
)

// FileStore keeps the collection as indented JSON in a single file. A lock
// file serializes access between concurrently running processes.
type FileStore struct {
	mu     sync.Mutex
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = discardLogger()
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create store file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close store file: %w", err)
	}
	return &FileStore{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger,
	}, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lock.Close()
}

func (s *FileStore) Load(ctx context.Context) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock store: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}
	return decodeProjects(s.logger, s.path, raw), nil
}

func (s *FileStore) Save(ctx context.Context, projects []model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := encodeProjects(projects)
	if err != nil {
		return err
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock store: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	if err := atomicWriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("atomic write store: %w", err)
	}
	return nil
}

func encodeProjects(projects []model.Project) ([]byte, error) {
	if projects == nil {
		projects = []model.Project{}
	}
	out := model.CloneProjects(projects)
	for i := range out {
		if out[i].Tasks == nil {
			out[i].Tasks = []model.Task{}
		}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal projects: %w", err)
	}
	return append(b, '\n'), nil
}

func decodeProjects(logger *slog.Logger, source string, raw []byte) []model.Project {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var projects []model.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		logger.Warn("discarding unreadable saved data", "source", source, "error", err)
		return nil
	}
	return sanitize(logger, source, projects)
}

func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()

	defer func() { _ = os.Remove(tmp) }()

	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
