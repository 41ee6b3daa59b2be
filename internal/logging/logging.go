// Package logging builds the zap loggers used across pgn-replay.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels accepted by New.
const (
	Quiet   = 0 // warnings and errors
	Normal  = 1 // plus per-game summaries
	Verbose = 2 // plus compile and navigation detail
)

// LevelFor maps a verbosity setting to a zap level.
func LevelFor(verbosity int) zapcore.Level {
	switch {
	case verbosity <= Quiet:
		return zapcore.WarnLevel
	case verbosity == Normal:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New returns a console-encoded logger writing to w.
func New(w io.Writer, verbosity int) *zap.SugaredLogger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(LevelFor(verbosity)),
	)
	return zap.New(core).Sugar()
}

// NewProduction returns the JSON production logger used by the server.
// It falls back to a no-op logger if zap cannot be built.
func NewProduction() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		return Nop()
	}
	return logger.Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
