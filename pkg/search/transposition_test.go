package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTable(t *testing.T) {
	ctx := context.Background()

	// (1) Test that capacity rounds down to a power of two.

	tt := search.NewTranspositionTable(ctx, 0x1000)
	assert.Equal(t, uint64(0x1000), tt.Size())
	tt2 := search.NewTranspositionTable(ctx, 0x1f00)
	assert.Equal(t, uint64(0x1000), tt2.Size())

	// (2) Test read/write.

	a := board.ZobristHash(rand.Uint64())

	_, _, _, _, ok := tt.Read(a)
	assert.False(t, ok)

	m := board.Move{From: board.G4, To: board.G8, Promotion: board.Queen}
	s := eval.Score(200)
	assert.True(t, tt.Write(a, search.PV, 5, 2, s, m))

	kind, depth, score, move, ok := tt.Read(a)
	assert.True(t, ok)
	assert.Equal(t, search.PV, kind)
	assert.Equal(t, 2, depth)
	assert.Equal(t, s, score)
	assert.Equal(t, m, move)

	_, _, _, _, ok = tt.Read(a ^ 0xff0000)
	assert.False(t, ok)

	// (3) Replacement policy is always-replace: a shallower write still overwrites.

	assert.True(t, tt.Write(a, search.Cut, 2, 1, eval.Score(-50), m))
	kind, depth, _, _, ok = tt.Read(a)
	assert.True(t, ok)
	assert.Equal(t, search.Cut, kind)
	assert.Equal(t, 1, depth)
}

func TestWriteLimited(t *testing.T) {
	ctx := context.Background()
	tt := search.NewMinDepthTranspositionTable(3)(ctx, 0x1000)

	a := board.ZobristHash(rand.Uint64())
	m := board.Move{From: board.E2, To: board.E4}

	assert.False(t, tt.Write(a, search.PV, 0, 2, eval.Score(10), m))
	_, _, _, _, ok := tt.Read(a)
	assert.False(t, ok)

	assert.True(t, tt.Write(a, search.PV, 0, 3, eval.Score(10), m))
	_, _, _, _, ok = tt.Read(a)
	assert.True(t, ok)
}
