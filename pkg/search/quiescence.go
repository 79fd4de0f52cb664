package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Quiescence is a capture-only alpha-beta search extending past the nominal horizon (C5). It
// does not consult or update the transposition table: captures are too shallow and too narrow a
// slice of the position space to be worth the table churn.
type Quiescence struct {
	Eval eval.Evaluator
}

func (q Quiescence) QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score) {
	run := &runQuiescence{eval: q.Eval, b: b}
	low, high := windowOrDefault(sctx)
	score := run.search(ctx, low, high)
	return run.nodes, score
}

type runQuiescence struct {
	eval  eval.Evaluator
	b     *board.Board
	nodes uint64
}

// search returns the score relative to the side to move.
func (r *runQuiescence) search(ctx context.Context, alpha, beta eval.Score) eval.Score {
	if contextx.IsCancelled(ctx) {
		return eval.Zero
	}
	if r.b.Result().Outcome == board.Draw {
		return eval.Zero
	}

	r.nodes++

	turn := r.b.Turn()
	stand := eval.HeuristicScore(r.eval.Evaluate(ctx, r.b), turn)
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}

	moves := NewMoveList(captures(r.b.Position().PseudoLegalMoves(turn)), MVVLVA)
	for {
		move, ok := moves.Next()
		if !ok {
			break
		}
		if !r.b.PushMove(move) {
			continue // skip: not legal
		}

		score := r.search(ctx, beta.Negate(), alpha.Negate())
		score = eval.IncrementMateDistance(score).Negate()

		r.b.PopMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// captures filters a move list down to captures and promotions, the only moves quiescence
// search considers.
func captures(moves []board.Move) []board.Move {
	ret := moves[:0]
	for _, m := range moves {
		if m.IsCapture() || m.IsPromotion() {
			ret = append(ret, m)
		}
	}
	return ret
}
