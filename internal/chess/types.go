// Package chess provides the piece encoding and the board of a static
// chess position.
package chess

import (
	"strings"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Colour represents the colour of a piece.
type Colour uint8

const (
	NoColour Colour = iota // Colourless (empty square)
	Black
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "None"
}

// Kind represents the type of a piece, independent of its colour.
type Kind uint8

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is the occupant of a square: a kind paired with a colour.
// The zero value is Empty. A Piece holds either both fields or neither,
// so every Piece value is one of the 13 legal square contents.
type Piece struct {
	kind   Kind
	colour Colour
}

// Empty is the content of an unoccupied square.
var Empty = Piece{}

// The twelve coloured pieces.
var (
	WhitePawn   = Piece{Pawn, White}
	WhiteKnight = Piece{Knight, White}
	WhiteBishop = Piece{Bishop, White}
	WhiteRook   = Piece{Rook, White}
	WhiteQueen  = Piece{Queen, White}
	WhiteKing   = Piece{King, White}

	BlackPawn   = Piece{Pawn, Black}
	BlackKnight = Piece{Knight, Black}
	BlackBishop = Piece{Bishop, Black}
	BlackRook   = Piece{Rook, Black}
	BlackQueen  = Piece{Queen, Black}
	BlackKing   = Piece{King, Black}
)

// Compose builds the piece of the given kind and colour.
// Compose(NoKind, NoColour) is Empty. A kind without a colour, a colour
// without a kind, or an out-of-range value is a programming error and panics
// with a *errors.CodeError wrapping ErrInvalidPiece.
func Compose(kind Kind, colour Colour) Piece {
	validKind := kind > NoKind && kind < NumKinds
	validColour := colour == Black || colour == White
	switch {
	case kind == NoKind && colour == NoColour:
		return Empty
	case validKind && validColour:
		return Piece{kind, colour}
	}
	panic(&errors.CodeError{
		Op:   "Compose",
		Code: int(kind.Code() | colour.Code()),
		Err:  errors.ErrInvalidPiece,
	})
}

// W creates a white piece.
func W(kind Kind) Piece {
	return Compose(kind, White)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Compose(kind, Black)
}

// Kind returns the piece's kind (NoKind for Empty).
func (p Piece) Kind() Kind {
	return p.kind
}

// Colour returns the piece's colour (NoColour for Empty).
func (p Piece) Colour() Colour {
	return p.colour
}

// IsEmpty reports whether p is the empty square.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Letter returns the display character of the piece: a space for Empty,
// uppercase for White and lowercase for Black.
func (p Piece) Letter() byte {
	return p.Code().Letter()
}

// String returns the piece's display character.
func (p Piece) String() string {
	return string(p.Letter())
}

// Name returns a human readable name such as "white king" or "empty".
func (p Piece) Name() string {
	if p.IsEmpty() {
		return "empty"
	}
	return strings.ToLower(p.colour.String() + " " + p.kind.String())
}

// MarshalText encodes the piece as its display character.
func (p Piece) MarshalText() ([]byte, error) {
	return []byte{p.Letter()}, nil
}

// UnmarshalText decodes a display character produced by MarshalText.
func (p *Piece) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return errors.Wrapf(errors.ErrInvalidPiece, "piece text %q", text)
	}
	piece, err := PieceFromLetter(text[0])
	if err != nil {
		return err
	}
	*p = piece
	return nil
}

// PieceFromLetter is the inverse of Piece.Letter.
func PieceFromLetter(letter byte) (Piece, error) {
	if letter == ' ' {
		return Empty, nil
	}
	colour := White
	upper := letter
	if letter >= 'a' && letter <= 'z' {
		colour = Black
		upper = letter - 'a' + 'A'
	}
	for kind := Pawn; kind < NumKinds; kind++ {
		if kind.Letter() == upper {
			return Compose(kind, colour), nil
		}
	}
	return Empty, errors.Wrapf(errors.ErrInvalidPiece, "letter %q", letter)
}
