package eval

import "github.com/corvidchess/corvid/pkg/board"

// pieceSquareTable holds the placement bonus for one piece type, indexed by Square (White's
// perspective; Black uses mirror(sq) to share the same table).
type pieceSquareTable [board.NumSquares]Score

// newPieceSquareTable builds a table from a human-readable rank8-to-rank1, file-a-to-file-h
// layout (the conventional way piece-square tables are published) and reindexes it to this
// package's Square numbering.
func newPieceSquareTable(rank8ToRank1 [64]int16) pieceSquareTable {
	var t pieceSquareTable
	for i, v := range rank8ToRank1 {
		r := board.Rank8 - board.Rank(i/8)
		f := board.FileA - board.File(i%8)
		t[board.NewSquare(f, r)] = Score(v)
	}
	return t
}

func pst(p board.Piece, sq board.Square) Score {
	switch p {
	case board.Pawn:
		return pawnPST[sq]
	case board.Knight:
		return knightPST[sq]
	case board.Bishop:
		return bishopPST[sq]
	case board.Rook:
		return rookPST[sq]
	case board.Queen:
		return queenPST[sq]
	case board.King:
		return kingPST[sq]
	default:
		return 0
	}
}

var pawnPST = newPieceSquareTable([64]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
})

var knightPST = newPieceSquareTable([64]int16{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
})

var bishopPST = newPieceSquareTable([64]int16{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
})

var rookPST = newPieceSquareTable([64]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
})

var queenPST = newPieceSquareTable([64]int16{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
})

// kingPST favors castled safety in the middlegame. Endgame king activity is intentionally not
// modeled as a separate table: see DESIGN.md.
var kingPST = newPieceSquareTable([64]int16{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
})
