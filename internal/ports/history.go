package ports

import (
	"context"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_history.go -package=mocks jot/internal/ports History,HistoryTx

// HistoryEntry is one note in the open history of a vault.
type HistoryEntry struct {
	// Path is relative to the vault root, with forward slashes.
	Path     string
	OpenedAt time.Time
	Count    int
}

// History records which notes of a vault were opened.
type History interface {
	// Lifecycle
	Open(vaultPath string) error
	Close() error

	Record(ctx context.Context, relPath string) error
	// Recent returns the most recently opened notes, newest first.
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)
	// Prune drops entries whose files no longer exist.
	Prune(ctx context.Context) (int, error)

	BeginTx(ctx context.Context) (HistoryTx, error)
}

// HistoryTx batches path maintenance after notes move or disappear.
type HistoryTx interface {
	RenamePath(oldPath, newPath string) error
	// RenamePrefix rewrites every entry below a moved folder.
	RenamePrefix(oldPrefix, newPrefix string) error
	DeletePath(path string) error
	DeletePrefix(prefix string) error

	Commit() error
	Rollback() error
}
