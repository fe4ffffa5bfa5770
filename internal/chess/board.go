package chess

import (
	"io"
	"strings"
)

// BoardSize is the number of ranks and files.
const BoardSize = 8

// Rendering frame. Each cell is drawn as " X │", preceded by one leading bar.
const (
	RuleChar    = "—"
	BarChar     = "│"
	CellWidth   = 4
	RenderWidth = 1 + BoardSize*CellWidth
)

var rule = strings.Repeat(RuleChar, RenderWidth)

// backRank is the file order of the pieces on each side's home rank.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board represents a static chess position.
//
// Squares are indexed [rank][file]: rank 0 is White's home rank, rank 7 is
// Black's, and file 0 is the a-file. Rendering walks the ranks from 7 down
// to 0, so Black appears at the top.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a board set up in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	for file := 0; file < BoardSize; file++ {
		b.squares[0][file] = W(backRank[file])
		b.squares[1][file] = W(Pawn)
		b.squares[6][file] = B(Pawn)
		b.squares[7][file] = B(backRank[file])
	}
	return b
}

// At returns the piece at the given rank and file (both 0-7).
func (b *Board) At(rank, file int) Piece {
	return b.squares[rank][file]
}

// Rank returns a copy of one rank, a-file first.
func (b *Board) Rank(rank int) [BoardSize]Piece {
	return b.squares[rank]
}

// Render draws the board as a bordered grid, Black's home rank first.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.Grow((BoardSize*2 + 1) * (RenderWidth*len(RuleChar) + 1))

	sb.WriteString(rule)
	sb.WriteByte('\n')
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteString(BarChar)
		for _, piece := range b.squares[rank] {
			sb.WriteByte(' ')
			sb.WriteByte(piece.Letter())
			sb.WriteByte(' ')
			sb.WriteString(BarChar)
		}
		sb.WriteByte('\n')
		sb.WriteString(rule)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer using Render.
func (b *Board) String() string {
	return b.Render()
}

// WriteTo writes the rendered board to w.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.Render())
	return int64(n), err
}

// Placement returns the piece placement field of a FEN record,
// e.g. "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR".
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		if rank < BoardSize-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for _, piece := range b.squares[rank] {
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}
