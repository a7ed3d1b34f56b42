package commands

import (
	"context"
	"fmt"

	"jot/internal/config"
)

// ConfigEntry is one configuration key and its value
type ConfigEntry struct {
	Key   string
	Value string
}

// ConfigResult contains the configuration values read or written
type ConfigResult struct {
	Entries []ConfigEntry
	Message string
}

// ConfigCommand reads every key, reads one key, or sets one key
type ConfigCommand struct {
	cfg   *config.Config
	Key   string
	Value string
	Set   bool
}

// NewConfigCommand creates a new ConfigCommand
func NewConfigCommand(cfg *config.Config, key, value string, set bool) *ConfigCommand {
	return &ConfigCommand{
		cfg:   cfg,
		Key:   key,
		Value: value,
		Set:   set,
	}
}

// Execute runs the config command
func (c *ConfigCommand) Execute(ctx context.Context) (*ConfigResult, error) {
	if c.Set {
		if err := c.cfg.Set(c.Key, c.Value); err != nil {
			return nil, err
		}
		value, _ := c.cfg.Get(c.Key)
		return &ConfigResult{
			Entries: []ConfigEntry{{Key: c.Key, Value: value}},
			Message: fmt.Sprintf("Set %s to %s", c.Key, value),
		}, nil
	}

	keys := config.Keys
	if c.Key != "" {
		keys = []string{c.Key}
	}
	result := &ConfigResult{}
	for _, key := range keys {
		value, err := c.cfg.Get(key)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, ConfigEntry{Key: key, Value: value})
	}
	return result, nil
}
