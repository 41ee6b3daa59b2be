package testutil

import (
	"testing"

	"github.com/lgbarn/pgn-replay-go/internal/game"
)

// Games shared by package tests.
const (
	// ShortGame is a complete game with headers, a capture and a result.
	ShortGame = `[Event "Test"]
[Site "Test"]
[Date "2024.01.01"]
[Round "1"]
[White "Player1"]
[Black "Player2"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Bxc6 dxc6 1-0`

	// AnnotatedGame carries plain text annotations after moves 1, 2 and 4.
	AnnotatedGame = `[Event "Annotated"]
[White "A"]
[Black "B"]
[Result "*"]

1. e4 {King's pawn} e5 {Symmetric} 2. Nf3 Nc6 {Developing} *`

	// CastlingGame ends with both sides castled kingside.
	CastlingGame = `1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. O-O Nf6 5. d3 O-O *`

	// PromotionGame promotes on e8 from a sparse position.
	PromotionGame = `[FEN "8/4P1k1/8/8/8/8/8/4K3 w - - 0 1"]

1. e8=Q Kf6 2. Qe2 *`
)

// NewTestSession builds a session and returns nil if that fails.
func NewTestSession(layout, movetext string, opts ...game.Option) *game.Session {
	s, err := game.New(layout, movetext, opts...)
	if err != nil {
		return nil
	}
	return s
}

// MustNewSession builds a session and fails the test if that fails.
func MustNewSession(t testing.TB, layout, movetext string, opts ...game.Option) *game.Session {
	t.Helper()
	s, err := game.New(layout, movetext, opts...)
	if err != nil {
		t.Fatalf("game.New() error = %v\n%s", err, movetext)
	}
	return s
}
