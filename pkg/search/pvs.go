package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// PVS implements negamax with alpha-beta pruning and principal variation search (C6): the first
// move at each node is searched with the full window, every subsequent move with a null window
// that is only widened back out on a fail-high. Pseudo-code:
//
//	function pvs(node, depth, α, β) is
//	    if depth = 0 or node is a terminal node then
//	        return the heuristic value of node
//	    for each child of node do
//	        if child is first child then
//	            score := −pvs(child, depth − 1, −β, −α)
//	        else
//	            score := −pvs(child, depth − 1, −α − 1, −α) (* null window *)
//	            if α < score < β then
//	                score := −pvs(child, depth − 1, −β, −score) (* fail-high: full re-search *)
//	        α := max(α, score)
//	        if α ≥ β then
//	            break (* β cutoff *)
//	    return α
//
// See: https://en.wikipedia.org/wiki/Principal_variation_search.
type PVS struct {
	Eval QuietSearch
}

func (p PVS) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runPVS{
		eval:   p.Eval,
		tt:     sctx.TT,
		rep:    sctx.Repetition,
		ponder: sctx.Ponder,
		b:      b,
	}
	low, high := windowOrDefault(sctx)

	score, moves := run.search(ctx, depth, low, high)
	if contextx.IsCancelled(ctx) {
		return 0, eval.Invalid, nil, ErrHalted
	}
	return run.nodes, score, moves, nil
}

type runPVS struct {
	eval   QuietSearch
	tt     TranspositionTable
	rep    *RepetitionTable
	ponder []board.Move
	b      *board.Board
	nodes  uint64
}

// search returns the score relative to the side to move, per negamax convention.
func (m *runPVS) search(ctx context.Context, depth int, alpha, beta eval.Score) (eval.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return eval.Invalid, nil
	}
	if m.b.Result().Outcome == board.Draw {
		return eval.Zero, nil
	}

	hash := m.b.Hash()

	// (2) Repetition: a position seen twice already along this search path is heading for a
	// draw; stop rather than keep exploring a line the opponent can force a repeat of.
	if m.rep != nil {
		if n := m.rep.Push(hash); n >= 3 {
			m.rep.Pop(hash)
			return eval.Zero, nil
		}
		defer m.rep.Pop(hash)
	}

	// (1) Terminal detection runs regardless of depth: quiescence only ever enumerates captures
	// and promotions, so it cannot by itself tell checkmate or stalemate from a quiet loss of
	// material. A horizon node with no legal move at all must be adjudicated here, before ever
	// handing off to quiescence.
	if depth == 0 && len(m.b.Position().LegalMoves(m.b.Turn())) == 0 {
		if result := m.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return eval.MATE.Negate(), nil
		}
		return eval.Zero, nil
	}

	if depth == 0 {
		sctx := &Context{Alpha: alpha, Beta: beta, TT: m.tt}
		nodes, score := m.eval.QuietSearch(ctx, sctx, m.b)
		m.nodes += nodes
		return score, nil
	}

	m.nodes++
	alphaOrig := alpha

	// (5) TT probe.
	var best board.Move
	if m.tt != nil {
		if kind, d, score, mv, ok := m.tt.Read(hash); ok {
			best = mv
			if d >= depth {
				switch {
				case kind == PV:
					return score, nil
				case kind == Cut && score >= beta:
					return score, nil
				case kind == All && score <= alpha:
					return score, nil
				}
			}
		}
	}

	// (6) Move ordering: TT move first, then MVV-LVA, honoring a ponder move if one is pending.
	priority := MVVLVA
	if best != (board.Move{}) {
		priority = First(best).MVVLVA
	}

	// A pending ponder move forces this node to explore only that one move: every other
	// pseudo-legal move is pushed to confirm legality and then skipped without contributing
	// to alpha, the PV or the TT write. Once consumed, deeper plies search unrestricted.
	explore := func(board.Move) bool { return true }
	restricted := len(m.ponder) > 0
	if restricted {
		want := m.ponder[0]
		priority = First(want).MVVLVA
		explore = want.Equals
		m.ponder = m.ponder[1:]
	}

	moves := NewMoveList(m.b.Position().PseudoLegalMoves(m.b.Turn()), priority)

	hasLegalMove := false
	searched := 0
	bestScore := eval.NegInf
	var bestMove board.Move
	var pv []board.Move

	for {
		move, ok := moves.Next()
		if !ok {
			break
		}
		if !m.b.PushMove(move) {
			continue // skip: not legal
		}
		hasLegalMove = true

		if !explore(move) {
			m.b.PopMove()
			continue
		}

		var score eval.Score
		var rem []board.Move
		if searched == 0 {
			score, rem = m.search(ctx, depth-1, beta.Negate(), alpha.Negate())
			score = score.Negate()
		} else {
			score, rem = m.search(ctx, depth-1, (alpha+1).Negate(), alpha.Negate())
			score = score.Negate()
			if alpha < score && score < beta {
				score, rem = m.search(ctx, depth-1, beta.Negate(), score.Negate())
				score = score.Negate()
			}
		}
		score = eval.IncrementMateDistance(score)
		searched++

		m.b.PopMove()

		if score > bestScore {
			bestScore = score
			bestMove = move
			pv = append([]board.Move{move}, rem...)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if m.tt != nil && !restricted {
				m.tt.Write(hash, Cut, m.b.Ply(), depth, beta, move)
			}
			return beta, pv
		}
	}

	if !hasLegalMove {
		if result := m.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return eval.MATE.Negate(), nil
		}
		return eval.Zero, nil
	}

	if m.tt != nil && !restricted {
		kind := PV
		if bestScore <= alphaOrig {
			kind = All
		}
		m.tt.Write(hash, kind, m.b.Ply(), depth, bestScore, bestMove)
	}
	return bestScore, pv
}
