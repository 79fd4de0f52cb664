package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPVS(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		fen      string
		depth    int
		expected eval.Score
	}{
		{fen.Initial, 4, 0},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 0},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 0},
	}

	pvs := search.PVS{Eval: search.Quiescence{Eval: eval.Material{}}}

	for _, tt := range tests {
		pos, turn, np, fm, err := fen.Decode(tt.fen)
		require.NoError(t, err)

		b := board.NewBoard(board.NewZobristTable(0), pos, turn, np, fm)
		sctx := &search.Context{
			Alpha:      eval.NegInf,
			Beta:       eval.INF,
			TT:         search.NewTranspositionTable(ctx, 1<<20),
			Repetition: search.NewRepetitionTable(),
		}

		n, actual, _, err := pvs.Search(ctx, sctx, b, tt.depth)
		require.NoError(t, err)
		assert.Lessf(t, n, uint64(50000), "too many nodes: %v", tt.fen)
		assert.Equalf(t, tt.expected, actual, "failed: %v", tt.fen)
	}
}

func TestPVSFindsMate(t *testing.T) {
	ctx := context.Background()

	// Fool's mate: 1. f3 e5 2. g4 Qh4#. White to move, no legal response to check.
	pos, turn, np, fm, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	b := board.NewBoard(board.NewZobristTable(1), pos, turn, np, fm)
	sctx := &search.Context{
		Alpha:      eval.NegInf,
		Beta:       eval.INF,
		TT:         search.NewTranspositionTable(ctx, 1<<20),
		Repetition: search.NewRepetitionTable(),
	}

	pvs := search.PVS{Eval: search.Quiescence{Eval: eval.Material{}}}
	_, score, moves, err := pvs.Search(ctx, sctx, b, 1)
	require.NoError(t, err)
	assert.Empty(t, moves)
	assert.True(t, score.IsMate())
	assert.Equal(t, eval.MATE.Negate(), score)
}

func TestPVSHorizonAdjudicatesStalemate(t *testing.T) {
	ctx := context.Background()

	// Classic stalemate: Black to move, no legal move and not in check.
	pos, turn, np, fm, err := fen.Decode("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	b := board.NewBoard(board.NewZobristTable(3), pos, turn, np, fm)
	sctx := &search.Context{
		Alpha:      eval.NegInf,
		Beta:       eval.INF,
		TT:         search.NoTranspositionTable{},
		Repetition: search.NewRepetitionTable(),
	}

	pvs := search.PVS{Eval: search.Quiescence{Eval: eval.Material{}}}

	// depth=0 exercises the horizon branch directly: without adjudicating terminal nodes before
	// handing off to quiescence, this would fall through to a material stand-pat score instead of
	// the mandated draw score.
	_, score, moves, err := pvs.Search(ctx, sctx, b, 0)
	require.NoError(t, err)
	assert.Empty(t, moves)
	assert.Equal(t, eval.Zero, score)
}

func TestPVSPonderForcesMove(t *testing.T) {
	ctx := context.Background()

	pos, turn, np, fm, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	b := board.NewBoard(board.NewZobristTable(2), pos, turn, np, fm)
	legal := b.Position().LegalMoves(b.Turn())
	require.NotEmpty(t, legal)

	pvs := search.PVS{Eval: search.Quiescence{Eval: eval.Material{}}}

	// Force a root move that is unlikely to be the engine's objectively best choice, and confirm
	// the returned PV is rooted at it rather than at whatever the unrestricted search prefers.
	forced := legal[len(legal)-1]

	sctx := &search.Context{
		Alpha:      eval.NegInf,
		Beta:       eval.INF,
		TT:         search.NoTranspositionTable{},
		Repetition: search.NewRepetitionTable(),
		Ponder:     []board.Move{forced},
	}
	_, _, moves, err := pvs.Search(ctx, sctx, b, 2)
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	assert.True(t, forced.Equals(moves[0]))
}
