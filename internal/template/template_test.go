package template

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jot/internal/domain"
)

func TestApply(t *testing.T) {
	now := time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC)
	vars := NewVariables("Weekly Review", "weekly-review", now)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "title and date", content: "# {{title}}\n{{date}}", want: "# Weekly Review\n2026-03-09"},
		{name: "datetime parts", content: "{{year}}/{{month}}/{{day}} {{weekday}} {{datetime}}", want: "2026/03/09 Monday 2026-03-09T14:30"},
		{name: "slug", content: "{{slug}}", want: "weekly-review"},
		{name: "unknown left alone", content: "{{author}}", want: "{{author}}"},
		{name: "escaped", content: "\\{{title}}", want: "{{title}}"},
		{name: "empty", content: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.content, vars))
		})
	}
}

func TestListAndLoad(t *testing.T) {
	vaultPath := t.TempDir()

	names, err := List(vaultPath)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, os.MkdirAll(Dir(vaultPath), 0o755))
	require.NoError(t, os.WriteFile(Path(vaultPath, "daily"), []byte("# {{date}}"), 0o644))
	require.NoError(t, os.WriteFile(Path(vaultPath, "meeting.md"), []byte("# {{title}}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(Dir(vaultPath), "notes.txt"), nil, 0o644))

	names, err = List(vaultPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"daily", "meeting"}, names)

	content, err := Load(vaultPath, "meeting")
	require.NoError(t, err)
	assert.Equal(t, "# {{title}}", content)

	_, err = Load(vaultPath, "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = Load(vaultPath, "../escape")
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCreate(t *testing.T) {
	vaultPath := t.TempDir()

	path, err := Create(vaultPath, "daily")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(vaultPath, domain.MetadataDir, DirName, "daily.md"), path)

	require.NoError(t, os.WriteFile(path, []byte("kept"), 0o644))
	_, err = Create(vaultPath, "daily")
	require.NoError(t, err)

	content, err := Load(vaultPath, "daily")
	require.NoError(t, err)
	assert.Equal(t, "kept", content)
}
