// Package eval contains static position evaluation.
package eval

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
)

// Evaluator is a static position evaluator. Evaluate is called on terminal leaves of the search
// tree and must be allocation-free and O(pieces on board).
type Evaluator interface {
	// Evaluate returns the position score from White's perspective: positive favors White.
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Material evaluates the nominal material balance, White minus Black.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()

	var score Score
	for p := board.Pawn; p <= board.Queen; p++ {
		diff := pos.Piece(board.White, p).PopCount() - pos.Piece(board.Black, p).PopCount()
		score += Score(diff) * NominalValue(p)
	}
	return score
}

// PieceSquare evaluates material plus piece-square placement, as specified in §4.1: six 64-entry
// tables indexed by the piece's square as seen from White, with Black's square mirrored by a
// vertical (rank) flip.
type PieceSquare struct{}

func (PieceSquare) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()

	var score Score
	for p := board.Pawn; p <= board.King; p++ {
		value := NominalValue(p)
		if p == board.King {
			value = 0 // placement only: the King is not material-scored
		}
		for bb := pos.Piece(board.White, p); bb != 0; {
			sq := bb.LastPopSquare()
			bb ^= board.BitMask(sq)
			score += value + pst(p, sq)
		}
		for bb := pos.Piece(board.Black, p); bb != 0; {
			sq := bb.LastPopSquare()
			bb ^= board.BitMask(sq)
			score -= value + pst(p, mirror(sq))
		}
	}
	return score
}

// mirror flips a square vertically (rank complement), so Black's piece-square lookups use the
// same tables as White's.
func mirror(sq board.Square) board.Square {
	return board.NewSquare(sq.File(), board.Rank8-sq.Rank())
}

// NominalValue is the absolute nominal value in centipawns of a piece. The King is not
// material-scored during normal play; its nominal value is reserved for mate-distance
// comparisons only and never added by an Evaluator.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain of a move, used by move ordering (C2).
func NominalValueGain(m board.Move) Score {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}
