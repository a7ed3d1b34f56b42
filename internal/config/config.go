package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"jot/internal/atomicfile"
)

const (
	// HomeEnv overrides the directory holding the config and the registry.
	HomeEnv = "JOT_HOME"

	ConfigFileName = "config.toml"

	DefaultEditor   = "nvim"
	DefaultLogLevel = "warn"
)

// Keys accepted by Get and Set.
const (
	KeyEditor   = "editor"
	KeyConflict = "conflict"
	KeyLogLevel = "log_level"
)

// Keys lists the settable keys in display order.
var Keys = []string{KeyEditor, KeyConflict, KeyLogLevel}

var logLevels = []interface{}{"debug", "info", "warn", "error"}

// Config is the static configuration read once at startup.
type Config struct {
	Editor string `toml:"editor"`
	// Conflict makes the launcher wait for the editor to exit, for editors
	// that share the terminal with jot.
	Conflict bool   `toml:"conflict"`
	LogLevel string `toml:"log_level"`
	Colors   Colors `toml:"colors"`

	path string
}

// Colors are lipgloss color strings used when listing.
type Colors struct {
	Vault  string `toml:"vault"`
	Folder string `toml:"folder"`
	Note   string `toml:"note"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Editor:   DefaultEditor,
		Conflict: true,
		LogLevel: DefaultLogLevel,
		Colors: Colors{
			Vault:  "#7C3AED",
			Folder: "#60A5FA",
			Note:   "",
		},
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Editor, validation.Required),
		validation.Field(&c.LogLevel, validation.Required, validation.In(logLevels...)),
	)
}

// Home returns $JOT_HOME, or the jot directory under the user config dir.
func Home() (string, error) {
	if env := strings.TrimSpace(os.Getenv(HomeEnv)); env != "" {
		return env, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "jot"), nil
}

// Load reads the config file at path on top of the defaults. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string { return c.path }

// Save writes the config back to its file.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	err := atomicfile.Encode(c.path, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(c)
	})
	if err != nil {
		return fmt.Errorf("failed to write config %s: %w", c.path, err)
	}
	return nil
}

// Get returns the value of key as text.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyEditor:
		return c.Editor, nil
	case KeyConflict:
		return strconv.FormatBool(c.Conflict), nil
	case KeyLogLevel:
		return c.LogLevel, nil
	default:
		return "", fmt.Errorf("unknown config key %q (expected one of %s)", key, strings.Join(Keys, ", "))
	}
}

// Set parses value into key and saves the file. The config is left
// unchanged when the new value is rejected.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case KeyEditor:
		next.Editor = strings.TrimSpace(value)
	case KeyConflict:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("conflict must be true or false, got %q", value)
		}
		next.Conflict = b
	case KeyLogLevel:
		next.LogLevel = strings.ToLower(strings.TrimSpace(value))
	default:
		return fmt.Errorf("unknown config key %q (expected one of %s)", key, strings.Join(Keys, ", "))
	}

	if err := next.Save(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Level converts LogLevel to a slog level.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
