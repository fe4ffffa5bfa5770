// Package errors provides sentinel errors and error types for chessboard.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCode indicates a packed piece code outside the defined set.
	ErrInvalidCode = errors.New("invalid piece code")

	// ErrInvalidPiece indicates a kind/colour pair or letter that names no piece.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownFormat indicates an output format name that is not recognised.
	ErrUnknownFormat = errors.New("unknown output format")
)

// CodeError reports a piece encoding violation. It carries the operation
// that produced the bad value and the raw numeric code, so the diagnostic
// identifies exactly which bit pattern was rejected.
type CodeError struct {
	Op   string // Operation that produced the code (e.g. "Or", "Piece")
	Code int    // The offending raw code
	Err  error  // ErrInvalidCode or ErrInvalidPiece
}

// Error returns "chess: <op>: <err> 0b<code>".
func (e *CodeError) Error() string {
	msg := "chess"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v 0b%05b", msg, e.Err, e.Code)
	}
	return fmt.Sprintf("%s: code 0b%05b", msg, e.Code)
}

// Unwrap returns the underlying error.
func (e *CodeError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
