package sqlite

import (
	"database/sql"
	"unicode/utf8"

	"jot/internal/ports"
)

// historyTx implements ports.HistoryTx
type historyTx struct {
	tx *sql.Tx
}

// Ensure historyTx implements HistoryTx
var _ ports.HistoryTx = (*historyTx)(nil)

// RenamePath updates an entry's path, replacing any entry already there
func (t *historyTx) RenamePath(oldPath, newPath string) error {
	_, err := t.tx.Exec(`UPDATE OR REPLACE history SET path = ? WHERE path = ?`, newPath, oldPath)
	return err
}

// RenamePrefix rewrites the paths of every entry below oldPrefix
func (t *historyTx) RenamePrefix(oldPrefix, newPrefix string) error {
	// substr counts characters, not bytes.
	n := utf8.RuneCountInString(oldPrefix)
	_, err := t.tx.Exec(`
		UPDATE OR REPLACE history
		SET path = ? || substr(path, ?)
		WHERE substr(path, 1, ?) = ?
	`, newPrefix+"/", n+2, n+1, oldPrefix+"/")
	return err
}

// DeletePath removes an entry by path
func (t *historyTx) DeletePath(path string) error {
	_, err := t.tx.Exec(`DELETE FROM history WHERE path = ?`, path)
	return err
}

// DeletePrefix removes every entry below prefix
func (t *historyTx) DeletePrefix(prefix string) error {
	_, err := t.tx.Exec(`DELETE FROM history WHERE substr(path, 1, ?) = ?`, utf8.RuneCountInString(prefix)+1, prefix+"/")
	return err
}

// Commit commits the transaction
func (t *historyTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *historyTx) Rollback() error {
	return t.tx.Rollback()
}
