// pgn-replay compiles chess games into reversible board transitions and
// replays them as text, JSON or SVG, or serves them to a browser viewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/logging"
	"github.com/lgbarn/pgn-replay-go/internal/output"
	"github.com/lgbarn/pgn-replay-go/internal/server"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("pgn-replay-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	log := logging.New(cfg.LogFile, cfg.Verbosity)
	defer log.Sync() //nolint:errcheck // best effort on exit

	if *serve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := server.New(cfg, log).Run(ctx); err != nil {
			log.Errorf("Server stopped: %v", err)
			os.Exit(1)
		}
		return
	}

	ctx := &ProcessingContext{
		cfg:       cfg,
		log:       log,
		seek:      *seekPly,
		checkOnly: *checkOnly,
	}
	if !*checkOnly {
		ctx.writer = output.NewGameWriter(cfg.OutputFile, cfg)
	}

	stats := processAllInputs(ctx, flag.Args(), os.Stdin)

	if cfg.Verbosity > logging.Quiet {
		reportStatistics(cfg.LogFile, stats)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// loadConfig loads the -config file, or the default XDG config file.
func loadConfig() (*config.Config, error) {
	if *configFile != "" {
		return config.Load(*configFile)
	}
	return config.LoadDefault()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pgn-replay [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Compiles chess games into reversible board transitions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nConfiguration:\n")
	fmt.Fprintf(os.Stderr, "  Settings are read from the -config file or %s under the XDG\n", "pgn-replay/config.yaml")
	fmt.Fprintf(os.Stderr, "  config directories, then from %s_* environment variables.\n", config.EnvPrefix)
	fmt.Fprintf(os.Stderr, "  Command-line flags take precedence.\n")
}
