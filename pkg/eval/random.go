package eval

import (
	"context"
	"github.com/corvidchess/corvid/pkg/board"
	"math/rand"
)

// Random adds a small amount of noise to an underlying Evaluator's score, in the centipawn
// range [-limit/2; limit/2]. A zero limit disables noise entirely, so it is safe to always wrap
// an Evaluator and toggle noise at construction time.
type Random struct {
	eval  Evaluator
	rand  *rand.Rand
	limit int
}

func NewRandom(eval Evaluator, limit int, seed int64) Random {
	return Random{
		eval:  eval,
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, b *board.Board) Score {
	base := n.eval.Evaluate(ctx, b)
	if n.limit <= 0 {
		return base
	}
	return base + Score(n.rand.Intn(n.limit)-n.limit/2)
}
