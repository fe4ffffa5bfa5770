// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"io"
	"os"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "text", "Output format: text, json, fen")
	compactJSON  = flag.Bool("compact", false, "Write JSON without indentation")

	// Logging
	logLevel = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	quiet    = flag.Bool("q", false, "Only log errors")

	// HTTP
	serveAddr = flag.String("serve", "", "Serve the board over HTTP on this address (e.g. :8080)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags onto cfg.
func applyFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return errors.Wrap(err, "-format")
	}
	cfg.Output.Format = format
	if *compactJSON {
		cfg.Output.JSONIndent = ""
	}

	cfg.LogLevel = *logLevel
	if *quiet {
		cfg.LogLevel = "error"
	}

	cfg.Server.Addr = *serveAddr
	return nil
}

// openOutput points cfg.OutputFile at the -o file when one was given.
// The returned closer is a no-op for stdout.
func openOutput(cfg *config.Config) (io.Closer, error) {
	if *outputFile == "" {
		return nopCloser{}, nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		return nil, errors.Wrapf(err, "creating output file %s", *outputFile)
	}
	cfg.SetOutput(file)
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
