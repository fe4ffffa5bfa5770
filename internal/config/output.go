package config

import "github.com/lgbarn/chessboard-go/internal/errors"

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects the board writer (Text, JSON or FEN)
	Format OutputFormat

	// JSONIndent is the per-level indent of JSON output; empty means compact
	JSONIndent string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     Text,
		JSONIndent: "  ",
	}
}

// Validate rejects formats that have no writer.
func (o *OutputConfig) Validate() error {
	if _, ok := formatNames[o.Format]; !ok {
		return errors.Wrapf(errors.ErrUnknownFormat, "format %d", int(o.Format))
	}
	return nil
}
