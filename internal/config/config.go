// Package config provides configuration for pgn-replay.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/pgn-replay-go/internal/engine"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=warnings only, 1=per-game summaries, 2=compile detail.
	Verbosity int `mapstructure:"verbosity"`

	Session SessionConfig `mapstructure:"session"`
	Output  OutputConfig  `mapstructure:"output"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Server  ServerConfig  `mapstructure:"server"`

	// Output streams
	OutputFile io.Writer `mapstructure:"-"`
	LogFile    io.Writer `mapstructure:"-"`
}

// SessionConfig holds settings applied to every compiled game.
type SessionConfig struct {
	// Layout is the starting layout or FEN used when a game has no FEN tag.
	// Empty means the standard starting position.
	Layout string `mapstructure:"layout"`

	// JSONAnnotations decodes brace annotations as JSON values.
	JSONAnnotations bool `mapstructure:"json_annotations"`

	// Flipped shows boards from Black's side.
	Flipped bool `mapstructure:"flipped"`
}

// BatchConfig holds settings for checking multi-game files.
type BatchConfig struct {
	// Workers is the number of compile workers; 0 means one per CPU.
	Workers int `mapstructure:"workers"`

	// FailFast stops at the first game that fails to compile.
	FailFast bool `mapstructure:"fail_fast"`
}

// ServerConfig holds settings for the viewer server.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	MaxSessions    int      `mapstructure:"max_sessions"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 1,
		Output:    *NewOutputConfig(),
		Batch:     BatchConfig{Workers: 0},
		Server: ServerConfig{
			Addr:        ":8080",
			MaxSessions: 1000,
		},
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Session.Layout != "" {
		if _, err := engine.DecodeLayout(c.Session.Layout); err != nil {
			return fmt.Errorf("session layout %q: %v: %w", c.Session.Layout, err, errors.ErrInvalidConfig)
		}
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch workers (%d) must not be negative: %w", c.Batch.Workers, errors.ErrInvalidConfig)
	}
	if c.Server.MaxSessions < 0 {
		return fmt.Errorf("server max_sessions (%d) must not be negative: %w", c.Server.MaxSessions, errors.ErrInvalidConfig)
	}
	return nil
}
