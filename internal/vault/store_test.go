package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jot/internal/domain"
)

func TestLoadStore_Defaults(t *testing.T) {
	s, err := LoadStore(filepath.Join(t.TempDir(), ".jot", "data"))
	require.NoError(t, err)

	_, ok := s.ActiveFolderPath()
	assert.False(t, ok)
	assert.Empty(t, s.Aliases())
}

func TestStore_WriteThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jot", "data")
	s, err := LoadStore(path)
	require.NoError(t, err)

	require.NoError(t, s.SetActiveFolderPath("projects/go"))
	require.NoError(t, s.SetAlias("meeting-notes", "mn"))

	reloaded, err := LoadStore(path)
	require.NoError(t, err)
	rel, ok := reloaded.ActiveFolderPath()
	require.True(t, ok)
	assert.Equal(t, "projects/go", rel)

	alias, ok := reloaded.Alias("meeting-notes")
	require.True(t, ok)
	assert.Equal(t, "mn", alias)

	require.NoError(t, reloaded.SetActiveFolderPath(""))
	again, err := LoadStore(path)
	require.NoError(t, err)
	_, ok = again.ActiveFolderPath()
	assert.False(t, ok)
}

func TestStore_Aliases(t *testing.T) {
	s, err := LoadStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	require.NoError(t, s.SetAlias("todo", "t"))

	note, ok := s.NoteForAlias("t")
	require.True(t, ok)
	assert.Equal(t, "todo", note)

	_, ok = s.NoteForAlias("missing")
	assert.False(t, ok)

	require.NoError(t, s.RenameNote("todo", "tasks"))
	note, ok = s.NoteForAlias("t")
	require.True(t, ok)
	assert.Equal(t, "tasks", note)

	require.NoError(t, s.RenameNote("unaliased", "whatever"))

	removed, err := s.RemoveAlias("tasks")
	require.NoError(t, err)
	assert.Equal(t, "t", removed)

	_, err = s.RemoveAlias("tasks")
	assert.ErrorIs(t, err, domain.ErrAliasNotFound)

	require.NoError(t, s.SetAlias("x", "y"))
	require.NoError(t, s.ForgetNote("x"))
	assert.Empty(t, s.Aliases())
}

func TestLoadStore_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	content := "active_folder: a/b\naliases:\n  todo: t\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadStore(path)
	require.NoError(t, err)

	rel, ok := s.ActiveFolderPath()
	require.True(t, ok)
	assert.Equal(t, "a/b", rel)
	assert.Equal(t, map[string]string{"todo": "t"}, s.Aliases())
}

func TestLoadStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, []byte("aliases: [unterminated"), 0o644))

	_, err := LoadStore(path)
	assert.ErrorIs(t, err, domain.ErrFileSystem)
}
