// Package search contains the search core: principal variation search with transposition-table
// and quiescence integration, plus the move-ordering and table infrastructure it depends on. The
// iterative-deepening driver and time control live in the searchctl subpackage.
package search

import (
	"context"
	"errors"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// ErrHalted is returned when a search is cancelled before completing its current depth.
var ErrHalted = errors.New("search halted")

// Context carries the per-search state threaded through recursive calls: the alpha-beta window,
// the shared transposition table and an optional ponder line. When set, Ponder restricts the root
// node to exploring only its first move (all sibling moves are confirmed legal and skipped,
// uncounted); the entry is consumed on use, so any ply below it searches unrestricted.
type Context struct {
	Alpha, Beta eval.Score
	TT          TranspositionTable
	Repetition  *RepetitionTable
	Ponder      []board.Move
}

// Search evaluates a position to a fixed depth, returning the node count, score (from the
// perspective of the side to move) and principal variation.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error)
}

// QuietSearch resolves captures and promotions beyond the nominal search horizon so that the
// static evaluation is never taken in the middle of an exchange.
type QuietSearch interface {
	QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score)
}

func windowOrDefault(sctx *Context) (eval.Score, eval.Score) {
	low, high := eval.NegInf, eval.INF
	if !sctx.Alpha.IsInvalid() {
		low = sctx.Alpha
	}
	if !sctx.Beta.IsInvalid() {
		high = sctx.Beta
	}
	return low, high
}
