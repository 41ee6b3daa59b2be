package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/game"
	"github.com/lgbarn/pgn-replay-go/internal/output"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
	"github.com/lgbarn/pgn-replay-go/internal/worker"
)

// ProcessingContext holds the state shared by every input.
type ProcessingContext struct {
	cfg       *config.Config
	log       *zap.SugaredLogger
	writer    output.GameWriter // nil in check mode
	seek      int               // -1 means the final position
	checkOnly bool
}

// Stats counts the games seen across all inputs.
type Stats struct {
	Games  int
	Failed int
}

// sessionOptions returns the game options implied by the configuration.
func sessionOptions(cfg *config.Config, log *zap.SugaredLogger) []game.Option {
	return []game.Option{
		game.WithDefaultLayout(cfg.Session.Layout),
		game.WithJSONAnnotations(cfg.Session.JSONAnnotations),
		game.WithFlipped(cfg.Session.Flipped),
		game.WithLogger(log),
	}
}

// processAllInputs processes the named files, or stdin when there are none.
func processAllInputs(ctx *ProcessingContext, args []string, stdin io.Reader) Stats {
	var total Stats

	if len(args) == 0 {
		total = processInput(ctx, stdin, "stdin")
	} else {
		for _, filename := range args {
			file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
			if err != nil {
				ctx.log.Errorf("Error opening file %s: %v", filename, err)
				total.Failed++
				continue
			}

			st := processInput(ctx, file, filename)
			file.Close() //nolint:errcheck,gosec // read-only
			total.Games += st.Games
			total.Failed += st.Failed

			if ctx.cfg.Batch.FailFast && st.Failed > 0 {
				break
			}
		}
	}

	if ctx.writer != nil {
		if err := ctx.writer.Close(); err != nil {
			ctx.log.Errorf("Error writing output: %v", err)
		}
	}
	return total
}

// processInput compiles every game in r and writes the successful ones.
func processInput(ctx *ProcessingContext, r io.Reader, name string) Stats {
	games, err := parser.SplitGames(r)
	if err != nil {
		ctx.log.Errorf("Error reading %s: %v", name, err)
		return Stats{Failed: 1}
	}
	ctx.log.Debugw("input split", "input", name, "games", len(games))

	batch := worker.Batch{
		Workers:  ctx.cfg.Batch.Workers,
		FailFast: ctx.cfg.Batch.FailFast,
		Logger:   ctx.log.With("input", name),
	}
	results := batch.Run(games, worker.Compile("", sessionOptions(ctx.cfg, ctx.log)...))

	st := Stats{Games: len(games), Failed: len(worker.Failures(results))}
	if ctx.checkOnly || ctx.writer == nil {
		return st
	}

	for _, res := range results {
		if res.Error != nil {
			continue
		}
		if err := writeSession(ctx, res.Session); err != nil {
			ctx.log.Errorf("Error writing game %d of %s: %v", res.Game.Number, name, err)
			st.Failed++
		}
	}
	return st
}

// writeSession positions the session at the requested half-move and writes it.
func writeSession(ctx *ProcessingContext, s *game.Session) error {
	var err error
	if ctx.seek < 0 {
		_, err = s.End()
	} else {
		_, err = s.SeekTo(ctx.seek)
	}
	if err != nil {
		return err
	}
	return ctx.writer.WriteGame(s)
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, st Stats) {
	fmt.Fprintf(w, "%d game(s) compiled, %d failed, out of %d.\n", st.Games-st.Failed, st.Failed, st.Games)
}
