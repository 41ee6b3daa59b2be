package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/logging"
	"github.com/lgbarn/pgn-replay-go/internal/output"
)

const twoGames = `[Event "First"]
[White "Anderssen"]
[Black "Kieseritzky"]
[Result "*"]

1. e4 e5 2. Nf3 Nc6 *

[Event "Second"]
[Result "*"]

1. d4 d5 *
`

const brokenGame = `[Event "Broken"]

1. e4 e5 2. Ke3 *
`

func createTempPGN(t *testing.T, filename, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), filename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func newContext(cfg *config.Config, out *bytes.Buffer, logs *bytes.Buffer, checkOnly bool) *ProcessingContext {
	ctx := &ProcessingContext{
		cfg:       cfg,
		log:       logging.New(logs, logging.Normal),
		seek:      -1,
		checkOnly: checkOnly,
	}
	if !checkOnly {
		ctx.writer = output.NewGameWriter(out, cfg)
	}
	return ctx
}

func TestProcessStdinText(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := config.NewConfig()
	cfg.Output.ShowBoard = false

	st := processAllInputs(newContext(cfg, &out, &logs, false), nil, strings.NewReader(twoGames))

	if st.Games != 2 || st.Failed != 0 {
		t.Fatalf("stats = %+v; want 2 games, 0 failed", st)
	}
	got := out.String()
	for _, want := range []string{`[Event "First"]`, "1. e4 e5 2. Nf3 Nc6 *", `[Event "Second"]`, "1. d4 d5 *"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "First") > strings.Index(got, "Second") {
		t.Error("games written out of input order")
	}
}

func TestProcessJSONSeek(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutputFormat(config.JSONFormat).Build()
	ctx := newContext(cfg, &out, &logs, false)
	ctx.seek = 2

	path := createTempPGN(t, "games.pgn", twoGames)
	st := processAllInputs(ctx, []string{path}, nil)
	if st.Failed != 0 {
		t.Fatalf("stats = %+v", st)
	}

	var doc output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if len(doc.Games) != 2 {
		t.Fatalf("len(Games) = %d; want 2", len(doc.Games))
	}
	if doc.Games[0].Cursor != 2 || doc.Games[0].PlyCount != 4 {
		t.Errorf("game 1 cursor/plies = %d/%d; want 2/4", doc.Games[0].Cursor, doc.Games[0].PlyCount)
	}
	if doc.Games[1].Cursor != 2 {
		t.Errorf("game 2 cursor = %d; want 2", doc.Games[1].Cursor)
	}
}

func TestProcessCheckOnly(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := config.NewConfig()

	good := createTempPGN(t, "good.pgn", twoGames)
	bad := createTempPGN(t, "bad.pgn", brokenGame)
	st := processAllInputs(newContext(cfg, &out, &logs, true), []string{good, bad}, nil)

	if st.Games != 3 || st.Failed != 1 {
		t.Errorf("stats = %+v; want 3 games, 1 failed", st)
	}
	if out.Len() != 0 {
		t.Errorf("check mode wrote output: %q", out.String())
	}
	if !strings.Contains(logs.String(), "Ke3") {
		t.Errorf("failure not logged with its move:\n%s", logs.String())
	}
}

func TestProcessFailFastSkipsLaterFiles(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := config.NewConfigBuilder().WithFailFast(true).Build()

	bad := createTempPGN(t, "bad.pgn", brokenGame)
	good := createTempPGN(t, "good.pgn", twoGames)
	st := processAllInputs(newContext(cfg, &out, &logs, true), []string{bad, good}, nil)

	if st.Games != 1 || st.Failed != 1 {
		t.Errorf("stats = %+v; want only the broken file processed", st)
	}
}

func TestProcessMissingFile(t *testing.T) {
	var out, logs bytes.Buffer
	st := processAllInputs(newContext(config.NewConfig(), &out, &logs, true), []string{"/nonexistent/games.pgn"}, nil)
	if st.Failed != 1 {
		t.Errorf("stats = %+v; want 1 failure", st)
	}
	if !strings.Contains(logs.String(), "Error opening file") {
		t.Errorf("missing open error in logs:\n%s", logs.String())
	}
}

func TestReportStatistics(t *testing.T) {
	var buf bytes.Buffer
	reportStatistics(&buf, Stats{Games: 5, Failed: 2})
	if got := buf.String(); got != "3 game(s) compiled, 2 failed, out of 5.\n" {
		t.Errorf("reportStatistics() = %q", got)
	}
}
