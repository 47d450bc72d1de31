package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/tuido/internal/model"
)

// SQLiteStore keeps the collection in two tables. Order is kept in explicit
// position columns because rowid order is not guaranteed.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

func NewSQLiteStore(ctx context.Context, db *sql.DB, logger *slog.Logger) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if logger == nil {
		logger = discardLogger()
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := MigrateUp(ctx, db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

// OpenSQLite opens or creates the database at path. A file that SQLite
// reports as corrupt or not a database is renamed aside and replaced by an
// empty database.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = discardLogger()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	store, err := openSQLiteFile(ctx, path, logger)
	if err == nil || !isCorruptDB(err) {
		return store, err
	}

	aside := fmt.Sprintf("%s.corrupt-%d", path, time.Now().UnixNano())
	logger.Warn("moving unreadable database aside", "source", path, "moved_to", aside, "error", err)
	if err := os.Rename(path, aside); err != nil {
		return nil, fmt.Errorf("move corrupt database: %w", err)
	}
	return openSQLiteFile(ctx, path, logger)
}

func openSQLiteFile(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps PRAGMA settings and serializes writers.
	db.SetMaxOpenConns(1)
	store, err := NewSQLiteStore(ctx, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	store.path = path
	return store, nil
}

// isCorruptDB reports whether err means the file content is unusable, as
// opposed to the file being unreachable.
func isCorruptDB(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrNotADB || sqliteErr.Code == sqlite3.ErrCorrupt
}

func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, is_current FROM projects ORDER BY position ASC`)
	if err != nil {
		return s.readFailure("query projects", err)
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	index := make(map[uint32]int)
	for rows.Next() {
		var p model.Project
		var current int
		if err := rows.Scan(&p.ID, &p.Name, &current); err != nil {
			s.logger.Warn("discarding unreadable project row", "source", s.path, "error", err)
			return nil, nil
		}
		p.IsCurrent = current == 1
		p.Tasks = []model.Task{}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return s.readFailure("read projects", err)
	}

	taskRows, err := s.db.QueryContext(ctx, `SELECT id, project_id, state, title FROM tasks ORDER BY project_id ASC, position ASC`)
	if err != nil {
		return s.readFailure("query tasks", err)
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var t model.Task
		var state string
		if err := taskRows.Scan(&t.ID, &t.ProjectID, &state, &t.Title); err != nil {
			s.logger.Warn("discarding unreadable task row", "source", s.path, "error", err)
			return nil, nil
		}
		t.State = model.TaskState(state)
		i, ok := index[t.ProjectID]
		if !ok {
			s.logger.Warn("discarding saved data with orphan task", "source", s.path, "task_id", t.ID)
			return nil, nil
		}
		projects[i].Tasks = append(projects[i].Tasks, t)
	}
	if err := taskRows.Err(); err != nil {
		return s.readFailure("read tasks", err)
	}
	if len(projects) == 0 {
		return nil, nil
	}
	return sanitize(s.logger, s.path, projects), nil
}

// readFailure turns corrupt database pages into an empty collection and
// keeps every other failure fatal.
func (s *SQLiteStore) readFailure(op string, err error) ([]model.Project, error) {
	if isCorruptDB(err) {
		s.logger.Warn("discarding corrupt saved data", "source", s.path, "op", op, "error", err)
		return nil, nil
	}
	return nil, fmt.Errorf("%s: %w", op, err)
}

func (s *SQLiteStore) Save(ctx context.Context, projects []model.Project) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("clear projects: %w", err)
	}
	for pos, p := range projects {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO projects (id, name, is_current, position)
			VALUES (?, ?, ?, ?)`,
			p.ID, p.Name, boolInt(p.IsCurrent), pos,
		); err != nil {
			return fmt.Errorf("insert project %d: %w", p.ID, err)
		}
		for taskPos, t := range p.Tasks {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO tasks (id, project_id, state, title, position)
				VALUES (?, ?, ?, ?, ?)`,
				t.ID, p.ID, string(t.State), t.Title, taskPos,
			); err != nil {
				return fmt.Errorf("insert task %d: %w", t.ID, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
