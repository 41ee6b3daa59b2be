package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrParseFailure", ErrParseFailure},
		{"ErrNoMovetext", ErrNoMovetext},
		{"ErrAnnotationFormat", ErrAnnotationFormat},
		{"ErrInconsistentBoard", ErrInconsistentBoard},
		{"ErrInvalidConfig", ErrInvalidConfig},
		{"ErrSessionNotFound", ErrSessionNotFound},
		{"ErrTooManySessions", ErrTooManySessions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", tt.sentinel)
			}
		})
	}
}

func TestNoMovetextIsParseFailure(t *testing.T) {
	if !errors.Is(ErrNoMovetext, ErrParseFailure) {
		t.Error("errors.Is(ErrNoMovetext, ErrParseFailure) = false, want true")
	}
	if !strings.Contains(ErrNoMovetext.Error(), "no movetext found") {
		t.Errorf("ErrNoMovetext = %q, should mention no movetext found", ErrNoMovetext)
	}
}

func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
		excludes []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrIllegalMove,
				GameNum:  5,
				PlyNum:   12,
				MoveText: "Nxe5",
				File:     "games.pgn",
				Line:     42,
			},
			contains: []string{"game 5", "ply 12", "Nxe5", "games.pgn:42", "illegal move"},
		},
		{
			name: "single session",
			err: &GameError{
				Err:      ErrIllegalMove,
				PlyNum:   3,
				MoveText: "Rb2",
			},
			contains: []string{"ply 3", `"Rb2"`, "illegal move"},
			excludes: []string{"game"},
		},
		{
			name:     "no context",
			err:      &GameError{Err: ErrParseFailure},
			contains: []string{"parse failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
			for _, s := range tt.excludes {
				if containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should not contain %q", msg, s)
				}
			}
		})
	}
}

func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      ErrIllegalMove,
		PlyNum:   24,
		MoveText: "O-O-O",
	}
	wrapped := fmt.Errorf("compile failed: %w", gameErr)

	var extracted *GameError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract GameError")
	}
	if extracted.PlyNum != 24 {
		t.Errorf("extracted.PlyNum = %d, want 24", extracted.PlyNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestWithGame(t *testing.T) {
	t.Run("game error keeps ply", func(t *testing.T) {
		orig := &GameError{Err: ErrIllegalMove, PlyNum: 7, MoveText: "Qh5"}
		err := WithGame(orig, 4)

		var ge *GameError
		if !errors.As(err, &ge) {
			t.Fatal("WithGame did not return a GameError")
		}
		if ge.GameNum != 4 || ge.PlyNum != 7 || ge.MoveText != "Qh5" {
			t.Errorf("WithGame = %+v; want game 4, ply 7, move Qh5", ge)
		}
		if orig.GameNum != 0 {
			t.Errorf("original GameNum = %d; want 0 (not mutated)", orig.GameNum)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		err := WithGame(ErrNoMovetext, 2)
		if !errors.Is(err, ErrParseFailure) {
			t.Error("WithGame should preserve the underlying error")
		}
		if !containsIgnoreCase(err.Error(), "game 2") {
			t.Errorf("WithGame error = %q, should contain game 2", err)
		}
	})

	t.Run("nil", func(t *testing.T) {
		if err := WithGame(nil, 1); err != nil {
			t.Errorf("WithGame(nil) = %v; want nil", err)
		}
	})
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrAnnotationFormat,
		File:     "annotated.pgn",
		Line:     1,
		Column:   15,
		Expected: "JSON value",
		Got:      "{bad",
	}

	msg := err.Error()
	for _, s := range []string{"annotated.pgn:1:15", "expected JSON value, got {bad", "malformed annotation"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrAnnotationFormat) {
		t.Error("errors.Is(err, ErrAnnotationFormat) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "decoding layout")
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "decoding layout") {
		t.Errorf("Wrap should include context, got %q", wrapped)
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d in game %d", 15, 3)
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "move 15 in game 3") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped)
	}
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
