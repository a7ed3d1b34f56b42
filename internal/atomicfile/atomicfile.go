// Package atomicfile replaces the small state files jot keeps (registry,
// config, vault store) so a reader sees either the old or the new content.
package atomicfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

const filePerm = 0o644

// Encode runs encode against a temp file beside path and renames the temp
// file over path once it is flushed and synced. Missing parent directories
// are created. On failure path is left untouched and the temp file removed.
func Encode(path string, encode func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.partial")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = encode(w); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err = w.Flush(); err != nil {
		return err
	}
	_ = tmp.Chmod(filePerm)
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return replace(tmp.Name(), path)
}

func replace(from, to string) error {
	err := os.Rename(from, to)
	if err != nil && runtime.GOOS == "windows" {
		// rename does not overwrite there
		if rmErr := os.Remove(to); rmErr == nil {
			err = os.Rename(from, to)
		}
	}
	return err
}
