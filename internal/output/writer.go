// Package output provides board output in the supported formats.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// BoardWriter is the interface for writing boards to output.
// Different implementations handle different output formats (text, JSON, FEN).
type BoardWriter interface {
	// WriteBoard writes a single board to the output.
	WriteBoard(board *chess.Board) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the BoardWriter selected by cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) (BoardWriter, error) {
	switch cfg.Output.Format {
	case config.Text:
		return NewTextWriter(w), nil
	case config.JSON:
		return NewJSONWriter(w, cfg), nil
	case config.FEN:
		return NewFENWriter(w), nil
	}
	return nil, errors.Wrapf(errors.ErrUnknownFormat, "format %v", cfg.Output.Format)
}

// TextWriter writes boards as bordered grids.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteBoard writes the rendered board.
func (tw *TextWriter) WriteBoard(board *chess.Board) error {
	_, err := board.WriteTo(tw.w)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FENWriter writes one FEN piece placement line per board.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WriteBoard writes the placement field followed by a newline.
func (fw *FENWriter) WriteBoard(board *chess.Board) error {
	_, err := io.WriteString(fw.w, board.Placement()+"\n")
	return err
}

// Flush is a no-op; lines are written immediately.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes boards in JSON format.
// A single board is written as one object; several boards are written as
// a JSON array on Flush or Close.
type JSONWriter struct {
	w      io.Writer
	indent string
	boards []*chess.Board
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		indent: cfg.Output.JSONIndent,
	}
}

// WriteBoard buffers a board for JSON output.
func (jw *JSONWriter) WriteBoard(board *chess.Board) error {
	jw.boards = append(jw.boards, board)
	return nil
}

// Flush writes all buffered boards.
func (jw *JSONWriter) Flush() error {
	if len(jw.boards) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", jw.indent)

	var err error
	if len(jw.boards) == 1 {
		err = enc.Encode(BoardToJSON(jw.boards[0]))
	} else {
		out := make([]*JSONBoard, 0, len(jw.boards))
		for _, board := range jw.boards {
			out = append(out, BoardToJSON(board))
		}
		err = enc.Encode(out)
	}

	// Clear buffer after writing
	jw.boards = jw.boards[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
