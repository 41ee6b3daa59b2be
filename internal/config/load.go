package config

import (
	"fmt"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PGN_REPLAY_OUTPUT_FORMAT.
const EnvPrefix = "PGN_REPLAY"

// defaultFile is the config file searched for in the XDG config directories.
const defaultFile = "pgn-replay/config.yaml"

// DefaultPath returns the first existing config file in the XDG config
// directories.
func DefaultPath() (string, bool) {
	path, err := xdg.SearchConfigFile(defaultFile)
	if err != nil {
		return "", false
	}
	return path, true
}

// Load builds a Config from defaults, the file at path (skipped when path is
// empty) and PGN_REPLAY_* environment variables, then validates it.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	v := viper.New()
	setDefaults(v, cfg)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the config file found by DefaultPath, or defaults and
// environment only when there is none.
func LoadDefault() (*Config, error) {
	path, _ := DefaultPath()
	return Load(path)
}

// setDefaults registers every key so environment overrides apply even
// without a config file.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("verbosity", cfg.Verbosity)

	v.SetDefault("session.layout", cfg.Session.Layout)
	v.SetDefault("session.json_annotations", cfg.Session.JSONAnnotations)
	v.SetDefault("session.flipped", cfg.Session.Flipped)

	v.SetDefault("output.format", string(cfg.Output.Format))
	v.SetDefault("output.max_line_length", cfg.Output.MaxLineLength)
	v.SetDefault("output.show_board", cfg.Output.ShowBoard)
	v.SetDefault("output.keep_annotations", cfg.Output.KeepAnnotations)
	v.SetDefault("output.square_size", cfg.Output.SquareSize)

	v.SetDefault("batch.workers", cfg.Batch.Workers)
	v.SetDefault("batch.fail_fast", cfg.Batch.FailFast)

	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.max_sessions", cfg.Server.MaxSessions)
	v.SetDefault("server.allowed_origins", cfg.Server.AllowedOrigins)
}
