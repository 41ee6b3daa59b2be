// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/logging"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	lineLength = flag.Int("w", 0, "Maximum line length (0 = config value)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format, including the transition log")
	svgOutput  = flag.Bool("svg", false, "Output an SVG diagram of each game's position")
	squareSize = flag.Int("squaresize", 0, "SVG square size in pixels (0 = config value)")
	noBoard    = flag.Bool("noboard", false, "Don't print a diagram in text output")
	noComments = flag.Bool("C", false, "Don't output annotations")

	// Session options
	fenLayout       = flag.String("fen", "", "Starting layout or FEN for games without a FEN tag")
	seekPly         = flag.Int("seek", -1, "Show each game at half-move N (-1 = final position)")
	jsonAnnotations = flag.Bool("jsonannotations", false, "Decode {...} annotations as JSON values")
	flipBoard       = flag.Bool("flip", false, "Show boards from Black's side")

	// Batch checking
	checkOnly = flag.Bool("check", false, "Compile games and report failures without output")
	workers   = flag.Int("workers", 0, "Number of worker threads (0 = config value, auto-detect by default)")
	failFast  = flag.Bool("failfast", false, "Stop at the first game that fails to compile")

	// Viewer server
	serve      = flag.Bool("serve", false, "Run the viewer server instead of processing files")
	serverAddr = flag.String("addr", "", "Server listen address (default from config, :8080)")

	// Configuration and logging
	configFile = flag.String("config", "", "Config file (default: $XDG_CONFIG_HOME/pgn-replay/config.yaml)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	verbose    = flag.Bool("v", false, "Verbose diagnostics")
	quiet      = flag.Bool("s", false, "Silent mode (warnings only, no summary)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags on top of the loaded configuration.
// Unset flags leave the configuration untouched.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applySessionFlags(cfg)
	applyBatchFlags(cfg)

	if *serverAddr != "" {
		cfg.Server.Addr = *serverAddr
	}

	switch {
	case *quiet:
		cfg.Verbosity = logging.Quiet
	case *verbose:
		cfg.Verbosity = logging.Verbose
	}
	return nil
}

// applyOutputFormatFlags selects the output format.
func applyOutputFormatFlags(cfg *config.Config) error {
	switch {
	case *jsonOutput && *svgOutput:
		return fmt.Errorf("-J and -svg are mutually exclusive")
	case *jsonOutput:
		cfg.Output.Format = config.JSONFormat
	case *svgOutput:
		cfg.Output.Format = config.SVGFormat
	}
	return nil
}

// applyOutputFlags configures text and SVG layout.
func applyOutputFlags(cfg *config.Config) {
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	if *squareSize > 0 {
		cfg.Output.SquareSize = *squareSize
	}
	if *noBoard {
		cfg.Output.ShowBoard = false
	}
	if *noComments {
		cfg.Output.KeepAnnotations = false
	}
}

// applySessionFlags configures how games are compiled.
func applySessionFlags(cfg *config.Config) {
	if *fenLayout != "" {
		cfg.Session.Layout = *fenLayout
	}
	if *jsonAnnotations {
		cfg.Session.JSONAnnotations = true
	}
	if *flipBoard {
		cfg.Session.Flipped = true
	}
}

// applyBatchFlags configures the worker pool.
func applyBatchFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if *failFast {
		cfg.Batch.FailFast = true
	}
}
