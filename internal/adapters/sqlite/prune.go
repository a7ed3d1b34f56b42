package sqlite

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"jot/internal/domain"
)

// Prune removes entries whose note no longer exists on disk and returns
// how many were dropped.
func (h *History) Prune(ctx context.Context) (int, error) {
	if h.db == nil {
		return 0, errNotOpen
	}

	paths, err := h.paths(ctx)
	if err != nil {
		return 0, err
	}

	var missing []string
	for _, rel := range paths {
		_, err := os.Stat(domain.Join(h.vaultPath, filepath.FromSlash(rel)))
		if errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, rel)
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	tx, err := h.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	for _, rel := range missing {
		if err := tx.DeletePath(rel); err != nil {
			_ = tx.Rollback()
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	h.logger.Debug("history pruned", slog.String("vault", h.vaultPath), slog.Int("removed", len(missing)))
	return len(missing), nil
}

func (h *History) paths(ctx context.Context) ([]string, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT path FROM history`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
