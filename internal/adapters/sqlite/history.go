package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"jot/internal/domain"
	"jot/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const (
	schemaVersion = "1"
	// DatabaseFile is the history database name inside the vault metadata directory.
	DatabaseFile = "history.db"
)

// History implements ports.History using SQLite
type History struct {
	db        *sql.DB
	vaultPath string
	logger    *slog.Logger
	now       func() time.Time
}

// Ensure History implements ports.History
var _ ports.History = (*History)(nil)

// NewHistory creates a new SQLite history
func NewHistory(logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.Default()
	}
	return &History{logger: logger, now: time.Now}
}

// DatabasePath returns where the history of the vault at vaultPath lives.
func DatabasePath(vaultPath string) string {
	return domain.Join(vaultPath, domain.MetadataDir, DatabaseFile)
}

// Open initializes the history for the given vault path
func (h *History) Open(vaultPath string) error {
	if h.db != nil {
		return errors.New("history already open")
	}
	vaultPath, err := domain.Absolute(vaultPath)
	if err != nil {
		return fmt.Errorf("failed to resolve vault path: %w", err)
	}
	dbPath := DatabasePath(vaultPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS history (
			path TEXT PRIMARY KEY,
			opened_at INTEGER NOT NULL,
			count INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_history_opened_at ON history(opened_at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	h.db = db
	h.vaultPath = vaultPath
	return nil
}

// Close closes the database connection
func (h *History) Close() error {
	if h.db == nil {
		return nil
	}
	err := h.db.Close()
	h.db = nil
	h.vaultPath = ""
	return err
}

// Record marks relPath as opened now
func (h *History) Record(ctx context.Context, relPath string) error {
	if h.db == nil {
		return errNotOpen
	}
	_, err := h.db.ExecContext(ctx, `
		INSERT INTO history (path, opened_at, count) VALUES (?, ?, 1)
		ON CONFLICT(path) DO UPDATE SET
			opened_at = excluded.opened_at,
			count = count + 1
	`, filepath.ToSlash(relPath), h.now().UnixMilli())
	return err
}

// Recent returns up to limit entries, newest first
func (h *History) Recent(ctx context.Context, limit int) ([]ports.HistoryEntry, error) {
	if h.db == nil {
		return nil, errNotOpen
	}
	rows, err := h.db.QueryContext(ctx, `
		SELECT path, opened_at, count
		FROM history
		ORDER BY opened_at DESC, path ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ports.HistoryEntry
	for rows.Next() {
		var e ports.HistoryEntry
		var openedAt int64
		if err := rows.Scan(&e.Path, &openedAt, &e.Count); err != nil {
			return nil, err
		}
		e.OpenedAt = time.UnixMilli(openedAt)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// BeginTx starts a new transaction
func (h *History) BeginTx(ctx context.Context) (ports.HistoryTx, error) {
	if h.db == nil {
		return nil, errNotOpen
	}
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &historyTx{tx: tx}, nil
}

var errNotOpen = errors.New("history is not open")
