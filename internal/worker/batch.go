package worker

import (
	"runtime"
	"slices"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/game"
	"github.com/lgbarn/pgn-replay-go/internal/logging"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

// Compile returns a ProcessFunc that compiles each game against layout (see
// game.New for the fallbacks when it is empty). Failures carry the game number.
func Compile(layout string, opts ...game.Option) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		s, err := game.New(layout, item.Game.Text, opts...)
		if err != nil {
			return ProcessResult{Game: item.Game, Index: item.Index, Error: errors.WithGame(err, item.Game.Number)}
		}
		return ProcessResult{Game: item.Game, Index: item.Index, Session: s}
	}
}

// Batch runs a ProcessFunc over a list of games.
type Batch struct {
	Workers  int  // 0 means one per CPU
	FailFast bool // stop scheduling after the first error
	Logger   *zap.SugaredLogger
}

// Run processes games and returns the results in input order. With FailFast
// set, games not yet started when the first error arrives are skipped and
// absent from the results.
func (b Batch) Run(games []parser.GameText, process ProcessFunc) []ProcessResult {
	workers := b.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	log := b.Logger
	if log == nil {
		log = logging.Nop()
	}

	pool := NewPool(process, WithWorkers(workers), WithBufferSize(2*workers))
	pool.Start()

	go func() {
		for i, g := range games {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Game: g, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(games))
	for r := range pool.Results() {
		if r.Error != nil {
			log.Warnw("game failed", "game", r.Game.Number, "line", r.Game.Line, "error", r.Error)
			if b.FailFast {
				pool.Stop()
			}
		} else {
			log.Debugw("game compiled", "game", r.Game.Number, "halfmoves", r.Session.Len())
		}
		results = append(results, r)
	}

	slices.SortFunc(results, func(a, b ProcessResult) int {
		return a.Index - b.Index
	})
	return results
}

// Failures returns the errors of failed results, in order.
func Failures(results []ProcessResult) []error {
	var errs []error
	for _, r := range results {
		if r.Error != nil {
			errs = append(errs, r.Error)
		}
	}
	return errs
}
