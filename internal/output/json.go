package output

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
)

// JSONBoard represents a board in JSON format.
type JSONBoard struct {
	Ranks []JSONRank `json:"ranks"`
	FEN   string     `json:"fen"`
}

// JSONRank is one rank, a-file first. Rank numbers are 1-8 as printed on
// a board; ranks are listed from 8 down to 1, matching the text drawing.
type JSONRank struct {
	Rank    int           `json:"rank"`
	Squares []chess.Piece `json:"squares"`
}

// BoardToJSON converts a board to JSON format.
func BoardToJSON(board *chess.Board) *JSONBoard {
	jb := &JSONBoard{
		Ranks: make([]JSONRank, 0, chess.BoardSize),
		FEN:   board.Placement(),
	}
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		squares := board.Rank(rank)
		jb.Ranks = append(jb.Ranks, JSONRank{
			Rank:    rank + 1,
			Squares: squares[:],
		})
	}
	return jb
}
