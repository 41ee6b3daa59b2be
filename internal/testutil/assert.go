// Package testutil provides shared test helpers for pgn-replay.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The optional msgAndArgs add context to the failure.
func AssertEqual(t testing.TB, got, want any, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("%sunexpected error: %v", prefix(msgAndArgs...), err)
	}
}

// AssertErrorIs fails if err does not wrap target.
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...any) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%serror = %v; want %v", prefix(msgAndArgs...), err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...any) {
	t.Helper()
	if !strings.Contains(got, substr) {
		t.Errorf("%s%q does not contain %q", prefix(msgAndArgs...), got, substr)
	}
}

// AssertBoardsEqual compares two boards square by square, ids included.
func AssertBoardsEqual(t testing.TB, got, want *chess.Board, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(BoardSnapshot(want), BoardSnapshot(got)); diff != "" {
		t.Errorf("%sboards differ (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// BoardSnapshot maps every occupied square to its piece, e.g. "e1" -> "K#61".
func BoardSnapshot(b *chess.Board) map[string]string {
	out := make(map[string]string)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := b.Squares[row][col]; !p.IsEmpty() {
				out[chess.Square{Row: row, Col: col}.String()] = p.String()
			}
		}
	}
	return out
}

func prefix(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...) + ": "
	}
	return fmt.Sprintf("%v: ", msgAndArgs[0])
}
