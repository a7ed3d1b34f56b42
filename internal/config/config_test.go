package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	require.NoError(t, err)

	assert.Equal(t, DefaultEditor, cfg.Editor)
	assert.True(t, cfg.Conflict)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := "editor = \"code\"\nconflict = false\nlog_level = \"debug\"\n\n[colors]\nfolder = \"#FF0000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "code", cfg.Editor)
	assert.False(t, cfg.Conflict)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "#FF0000", cfg.Colors.Folder)
	assert.Equal(t, Default().Colors.Vault, cfg.Colors.Vault)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"loud\"\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "config validation failed")
}

func TestSetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)
	cfg, err := Load(path)
	require.NoError(t, err)

	tests := []struct {
		name    string
		key     string
		value   string
		want    string
		wantErr bool
	}{
		{name: "editor", key: KeyEditor, value: "hx", want: "hx"},
		{name: "conflict", key: KeyConflict, value: "false", want: "false"},
		{name: "log level is lower-cased", key: KeyLogLevel, value: "INFO", want: "info"},
		{name: "bad bool", key: KeyConflict, value: "maybe", wantErr: true},
		{name: "empty editor", key: KeyEditor, value: " ", wantErr: true},
		{name: "unknown key", key: "theme", value: "dark", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hx", reloaded.Editor)
	assert.False(t, reloaded.Conflict)
	assert.Equal(t, "info", reloaded.LogLevel)
}

func TestHome(t *testing.T) {
	t.Setenv(HomeEnv, "/tmp/jot-home")
	home, err := Home()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/jot-home", home)
}
