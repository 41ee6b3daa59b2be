package config

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// OutputFormat selects how a compiled game is written.
type OutputFormat string

const (
	TextFormat OutputFormat = "text" // Diagram plus numbered move list
	JSONFormat OutputFormat = "json" // Headers, moves, annotations and wire log
	SVGFormat  OutputFormat = "svg"  // Board diagram at the cursor
)

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(name); f {
	case TextFormat, JSONFormat, SVGFormat:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the output format.
	Format OutputFormat `mapstructure:"format"`

	// MaxLineLength is the wrap width of the move list.
	MaxLineLength uint `mapstructure:"max_line_length"`

	// ShowBoard adds an ASCII diagram to text output.
	ShowBoard bool `mapstructure:"show_board"`

	// KeepAnnotations includes annotations in the move list.
	KeepAnnotations bool `mapstructure:"keep_annotations"`

	// SquareSize is the edge of one square in SVG output, in pixels.
	SquareSize int `mapstructure:"square_size"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          TextFormat,
		MaxLineLength:   80,
		ShowBoard:       true,
		KeepAnnotations: true,
		SquareSize:      45,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if _, err := ParseOutputFormat(string(o.Format)); err != nil {
		return err
	}
	if o.MaxLineLength < 20 {
		return fmt.Errorf("max line length (%d) below 20: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	if o.SquareSize <= 0 {
		return fmt.Errorf("square size (%d) must be positive: %w", o.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
