package game

import (
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn-replay-go/internal/logging"
)

// Option configures a Session.
type Option func(*options)

type options struct {
	structured    bool
	flipped       bool
	defaultLayout string
	logger        *zap.SugaredLogger
}

func defaultOptions() options {
	return options{logger: logging.Nop()}
}

// WithJSONAnnotations decodes every brace annotation as a JSON value.
func WithJSONAnnotations(enabled bool) Option {
	return func(o *options) {
		o.structured = enabled
	}
}

// WithLogger sets the logger used for compile and navigation detail.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFlipped starts the session viewed from Black's side.
func WithFlipped(flipped bool) Option {
	return func(o *options) {
		o.flipped = flipped
	}
}

// WithDefaultLayout sets the layout used when New gets no layout and the
// movetext has no FEN tag.
func WithDefaultLayout(layout string) Option {
	return func(o *options) {
		o.defaultLayout = strings.TrimSpace(layout)
	}
}
