package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/tuido/internal/model"
)

var ErrUnknownBackend = errors.New("storage: unknown backend")

// Store persists the whole project collection. Load treats missing or
// unreadable content as an empty collection; only filesystem and database
// failures are returned as errors.
type Store interface {
	Load(ctx context.Context) ([]model.Project, error)
	Save(ctx context.Context, projects []model.Project) error
	Path() string
	Close() error
}

type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

func ParseBackend(raw string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(raw))); b {
	case "", BackendJSON:
		return BackendJSON, nil
	case BackendSQLite:
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, raw)
	}
}

const appDirName = "tuido"

// DefaultDir is the per-user directory holding the store and the log.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func DefaultPath(backend Backend) (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	if backend == BackendSQLite {
		return filepath.Join(dir, "tasks.db"), nil
	}
	return filepath.Join(dir, "tasks.json"), nil
}

// Open builds the store for backend. An empty path selects the default location.
func Open(ctx context.Context, backend Backend, path string, logger *slog.Logger) (Store, error) {
	if strings.TrimSpace(path) == "" {
		p, err := DefaultPath(backend)
		if err != nil {
			return nil, err
		}
		path = p
	}
	switch backend {
	case BackendJSON, "":
		return NewFileStore(path, logger)
	case BackendSQLite:
		return OpenSQLite(ctx, path, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// sanitize drops a collection that would break controller invariants.
func sanitize(logger *slog.Logger, source string, projects []model.Project) []model.Project {
	if err := model.ValidateCollection(projects); err != nil {
		logger.Warn("discarding invalid saved data", "source", source, "error", err)
		return nil
	}
	return projects
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
