// Package config provides configuration for chessboard.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// OutputFormat represents the different board output formats.
type OutputFormat int

const (
	Text OutputFormat = iota // Bordered grid drawing
	JSON                     // JSON document with ranks and placement
	FEN                      // FEN piece placement field
)

var formatNames = map[OutputFormat]string{
	Text: "text",
	JSON: "json",
	FEN:  "fen",
}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseOutputFormat converts a format name (case-insensitive) to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for format, formatName := range formatNames {
		if formatName == name {
			return format, nil
		}
	}
	return Text, errors.Wrapf(errors.ErrUnknownFormat, "%q", name)
}

// Config holds all program configuration.
type Config struct {
	Output OutputConfig
	Server ServerConfig

	// LogLevel is an apex/log level name: debug, info, warn, error or fatal.
	LogLevel string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     *NewOutputConfig(),
		Server:     *NewServerConfig(),
		LogLevel:   "info",
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream boards are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	if c.OutputFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "no output stream")
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}
