// Package errors provides sentinel errors and error types for pgn-replay.
// Sentinels are checked with errors.Is(); the typed errors carry the game,
// ply and location context and unwrap to their sentinel.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidFEN indicates a malformed board layout or FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move token with no legal source square.
	ErrIllegalMove = errors.New("illegal move")

	// ErrParseFailure indicates a general movetext parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrNoMovetext indicates movetext without any recognizable move start.
	ErrNoMovetext = fmt.Errorf("%w: no movetext found", ErrParseFailure)

	// ErrAnnotationFormat indicates a structured annotation payload that is
	// not well-formed JSON.
	ErrAnnotationFormat = errors.New("malformed annotation")

	// ErrInconsistentBoard indicates a board primitive or replayed op that
	// does not fit the current position.
	ErrInconsistentBoard = errors.New("board inconsistent with operation")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSessionNotFound indicates an unknown session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTooManySessions indicates the server's session limit was reached.
	ErrTooManySessions = errors.New("too many open sessions")
)

// GameError wraps errors with game context: game number, ply and move text.
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the file (0 if not applicable)
	PlyNum   int    // 1-based half-move where the error occurred (0 if not applicable)
	MoveText string // The move token that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}
	if e.GameNum > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *GameError) Unwrap() error {
	return e.Err
}

// WithGame returns a copy of err carrying the game number when err is a
// *GameError, otherwise a new GameError wrapping err.
func WithGame(err error, gameNum int) error {
	if err == nil {
		return nil
	}
	var ge *GameError
	if errors.As(err, &ge) {
		cp := *ge
		cp.GameNum = gameNum
		return &cp
	}
	return &GameError{Err: err, GameNum: gameNum}
}

// ParseError represents a movetext parsing error with location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column or byte offset (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers importing this
// package need not import both.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
