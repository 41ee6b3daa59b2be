package worker

import (
	"errors"
	"strings"
	"testing"

	pgnerrors "github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

const batchPGN = `[Event "One"]

1. e4 e5 2. Nf3 *

[Event "Two"]

1. d4 d5 2. Qh5 *

[Event "Three"]

1. c4 e5 *
`

func splitBatch(t *testing.T) []parser.GameText {
	t.Helper()
	games, err := parser.SplitGames(strings.NewReader(batchPGN))
	if err != nil {
		t.Fatalf("SplitGames error: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("len(games) = %d; want 3", len(games))
	}
	return games
}

func TestBatchRun(t *testing.T) {
	games := splitBatch(t)
	results := Batch{Workers: 3}.Run(games, Compile(""))

	if len(results) != 3 {
		t.Fatalf("len(results) = %d; want 3", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d; results not in input order", i, r.Index)
		}
	}

	if results[0].Error != nil || results[0].Session.Len() != 3 {
		t.Errorf("game 1 = %+v", results[0])
	}
	if results[2].Error != nil || results[2].Session.Header("Event") != "Three" {
		t.Errorf("game 3 = %+v", results[2])
	}

	err := results[1].Error
	if !errors.Is(err, pgnerrors.ErrIllegalMove) {
		t.Fatalf("game 2 error = %v; want ErrIllegalMove", err)
	}
	var ge *pgnerrors.GameError
	if !errors.As(err, &ge) {
		t.Fatalf("game 2 error %T is not a *GameError", err)
	}
	if ge.GameNum != 2 || ge.PlyNum != 3 || ge.MoveText != "Qh5" {
		t.Errorf("GameError = %+v; want game 2, ply 3, Qh5", ge)
	}
	if results[1].Session != nil {
		t.Error("failed game has a session")
	}

	if got := len(Failures(results)); got != 1 {
		t.Errorf("len(Failures()) = %d; want 1", got)
	}
}

func TestBatchFailFast(t *testing.T) {
	games := make([]parser.GameText, 100)
	for i := range games {
		games[i] = parser.GameText{Number: i + 1, Text: "1. e4 e5 2. Ke3"}
	}

	results := Batch{Workers: 1, FailFast: true}.Run(games, Compile(""))
	if len(results) == 0 || results[0].Error == nil {
		t.Fatalf("first result = %+v; want an error", results)
	}
	if len(results) == len(games) {
		t.Errorf("all %d games processed despite fail-fast", len(results))
	}
}

func TestBatchEmpty(t *testing.T) {
	if results := (Batch{}).Run(nil, Compile("")); len(results) != 0 {
		t.Errorf("len(results) = %d; want 0", len(results))
	}
}
