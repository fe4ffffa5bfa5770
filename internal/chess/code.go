package chess

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Code is the packed five-bit form of a piece. The low three bits hold the
// kind and bits 3-4 hold the colour, so a coloured piece's code is
// kind.Code() | colour.Code().
//
// Only 21 codes are defined: zero, the six bare kinds, the two bare colours
// and the twelve coloured pieces. Or and And panic on any other result.
type Code uint8

// Reserved field masks.
const (
	KindMask   Code = 0b00111
	ColourMask Code = 0b11000

	colourShift = 3
)

// Code returns the bare kind code (colour bits clear).
func (k Kind) Code() Code {
	return Code(k)
}

// Code returns the bare colour code (kind bits clear).
func (c Colour) Code() Code {
	return Code(c) << colourShift
}

// Code returns the packed code of the piece.
func (p Piece) Code() Code {
	return p.kind.Code() | p.colour.Code()
}

// Valid reports whether c is one of the defined codes.
func (c Code) Valid() bool {
	kind := Kind(c & KindMask)
	colour := Colour(c >> colourShift)
	return c <= KindMask|ColourMask && kind < NumKinds && colour <= White
}

// Or returns the bitwise OR of c and o, the way a bare kind and a bare
// colour are combined into a piece: Pawn.Code().Or(White.Code()).
func (c Code) Or(o Code) Code {
	return mustValid("Or", c|o)
}

// And returns the bitwise AND of c and o. Masking with KindMask or
// ColourMask always yields a defined code.
func (c Code) And(o Code) Code {
	return mustValid("And", c&o)
}

// Kind extracts the kind field.
func (c Code) Kind() Kind {
	return Kind(mustValid("Kind", c).And(KindMask))
}

// Colour extracts the colour field.
func (c Code) Colour() Colour {
	return Colour(mustValid("Colour", c).And(ColourMask) >> colourShift)
}

// Piece decodes c into a square occupant. Codes outside the defined set,
// and bare kind or colour codes (which are operands, not square contents),
// panic with a *errors.CodeError.
func (c Code) Piece() Piece {
	c = mustValid("Piece", c)
	kind, colour := c.Kind(), c.Colour()
	if (kind == NoKind) != (colour == NoColour) {
		panic(&errors.CodeError{Op: "Piece", Code: int(c), Err: errors.ErrInvalidPiece})
	}
	return Piece{kind, colour}
}

// Letter renders any bit pattern without decoding it. Pairs of colour and
// kind fields that name none of the 13 square contents render as '?'.
func (c Code) Letter() byte {
	kind := Kind(c & KindMask)
	colour := Colour((c & ColourMask) >> colourShift)
	switch {
	case kind == NoKind:
		return ' '
	case kind >= NumKinds:
		return '?'
	case colour == White:
		return kind.Letter()
	case colour == Black:
		return kind.Letter() - 'A' + 'a'
	}
	return '?'
}

// String formats the code in binary, e.g. "0b10110".
func (c Code) String() string {
	return fmt.Sprintf("0b%05b", uint8(c))
}

func mustValid(op string, c Code) Code {
	if !c.Valid() {
		panic(&errors.CodeError{Op: op, Code: int(c), Err: errors.ErrInvalidCode})
	}
	return c
}
