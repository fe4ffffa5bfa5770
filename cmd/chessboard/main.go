// chessboard prints the standard chess starting position, or serves it over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/output"
	"github.com/lgbarn/chessboard-go/internal/server"
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
		fmt.Printf("chessboard version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	logger := newLogger(cfg)

	if err := applyFlags(cfg); err != nil {
		logger.WithError(err).Error("invalid flags")
		os.Exit(2)
	}
	logger = newLogger(cfg)

	closer, err := openOutput(cfg)
	if err != nil {
		logger.WithError(err).Error("opening output")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, logger)
	stop()

	if cerr := closer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.WithError(err).Error("chessboard failed")
		os.Exit(1)
	}
}

// run validates cfg and either writes the starting board once or serves it
// until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, logger log.Interface) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Server.Enabled() {
		return server.ListenAndServe(ctx, cfg, logger)
	}
	return writeBoard(cfg, logger)
}

// writeBoard writes the starting position through the configured writer.
func writeBoard(cfg *config.Config, logger log.Interface) error {
	w, err := output.NewWriter(cfg.OutputFile, cfg)
	if err != nil {
		return err
	}
	board := chess.NewBoard()
	logger.WithFields(log.Fields{
		"format":    cfg.Output.Format.String(),
		"placement": board.Placement(),
	}).Debug("writing board")

	if err := w.WriteBoard(board); err != nil {
		return err
	}
	return w.Close()
}

// newLogger builds a cli-handler logger at cfg.LogLevel. An unparsable
// level falls back to info; cfg.Validate reports it.
func newLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return &log.Logger{
		Handler: cli.New(cfg.LogFile),
		Level:   level,
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessboard [options]\n\n")
	fmt.Fprintf(os.Stderr, "Prints the standard chess starting position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  text   Bordered grid, Black at the top (default)\n")
	fmt.Fprintf(os.Stderr, "  json   Ranks and FEN placement as JSON\n")
	fmt.Fprintf(os.Stderr, "  fen    FEN piece placement field\n")
	fmt.Fprintf(os.Stderr, "\nHTTP routes (-serve):\n")
	fmt.Fprintf(os.Stderr, "  %-12s text drawing\n", server.BoardPath)
	fmt.Fprintf(os.Stderr, "  %-12s JSON document\n", server.BoardJSONPath)
	fmt.Fprintf(os.Stderr, "  %-12s FEN placement\n", server.BoardFENPath)
}
