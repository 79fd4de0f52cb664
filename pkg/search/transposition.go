package search

import (
	"context"
	"fmt"
	"math/bits"
	"sync"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/logw"
)

// NodeType classifies how a stored score bounds the true value, per the node classification at
// the end of a search call (§4.6): PV when the exact score was found within the window, Cut when
// a beta-cutoff occurred (score is a lower bound), All when every move failed low (score is an
// upper bound).
type NodeType uint8

const (
	PV NodeType = iota
	Cut
	All
)

func (t NodeType) String() string {
	switch t {
	case PV:
		return "PV"
	case Cut:
		return "Cut"
	case All:
		return "All"
	default:
		return "?"
	}
}

// TranspositionTable represents a transposition table to speed up search performance.
// Caveat: evaluation heuristics that depend on the game history (notably, hasCastled or
// last move) may be unsuitable for position-keyed caching. If the recent history is short,
// then the table may only be used for depth greater than some limit. Must be thread-safe.
type TranspositionTable interface {
	// Read returns the bound, depth, score and best move for the given position hash, if present.
	Read(hash board.ZobristHash) (NodeType, int, eval.Score, board.Move, bool)
	// Write stores the entry into the table, depending on table semantics and replacement policy.
	Write(hash board.ZobristHash, kind NodeType, ply, depth int, score eval.Score, move board.Move) bool

	// Size returns the size of the table in bytes.
	Size() uint64
	// Used returns the utilization as a fraction [0;1].
	Used() float64
}

type TranspositionTableFactory func(ctx context.Context, size uint64) TranspositionTable

// node represents a single search result. Zero value means the slot is empty.
type node struct {
	valid     bool
	hash      board.ZobristHash
	score     eval.Score
	kind      NodeType
	from, to  board.Square
	promotion board.Piece
	ply       uint16
	depth     uint16
}

// table is a single-probe, always-replace transposition table. The search driver (C7) runs one
// position at a time, so a plain mutex around a flat, allocation-free []node slab is both
// simpler and no slower in practice than a lock-free atomic-pointer design: see DESIGN.md.
type table struct {
	mu    sync.Mutex
	slots []node
	mask  uint64
	used  uint64
}

// entrySizeShift is log2 of the (padded) size in bytes of a single node slot.
const entrySizeShift = 5

func NewTranspositionTable(ctx context.Context, size uint64) TranspositionTable {
	n := uint64(1 << (63 - entrySizeShift - bits.LeadingZeros64(size)))

	logw.Infof(ctx, "Allocating %vMB TT with %v entries", size>>20, n)

	return &table{
		slots: make([]node, n),
		mask:  n - 1,
	}
}

func (t *table) Size() uint64 {
	return uint64(len(t.slots)) << entrySizeShift
}

func (t *table) Used() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return float64(t.used) / float64(len(t.slots))
}

func (t *table) Read(hash board.ZobristHash) (NodeType, int, eval.Score, board.Move, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.slots[uint64(hash)&t.mask]
	if !n.valid || n.hash != hash {
		return 0, 0, 0, board.Move{}, false
	}
	bestmove := board.Move{From: n.from, To: n.to, Promotion: n.promotion}
	return n.kind, int(n.depth), n.score, bestmove, true
}

func (t *table) Write(hash board.ZobristHash, kind NodeType, ply, depth int, score eval.Score, move board.Move) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := uint64(hash) & t.mask
	if !t.slots[key].valid {
		t.used++
	}
	t.slots[key] = node{
		valid:     true,
		hash:      hash,
		score:     score,
		kind:      kind,
		from:      move.From,
		to:        move.To,
		promotion: move.Promotion,
		ply:       uint16(ply),
		depth:     uint16(depth),
	}
	return true
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%v @ %v%%]", t.Size(), int(100*t.Used()))
}

// WriteFilter is a predicate on the Write operation.
type WriteFilter func(hash board.ZobristHash, kind NodeType, ply, depth int, score eval.Score, move board.Move) bool

// WriteLimited is a TranspositionTable wrapper that ignores certain writes, such as
// less than a given minimum depth. Useful if evaluation uses recent move history.
type WriteLimited struct {
	Filter WriteFilter
	TT     TranspositionTable
}

func (w WriteLimited) Read(hash board.ZobristHash) (NodeType, int, eval.Score, board.Move, bool) {
	return w.TT.Read(hash)
}

func (w WriteLimited) Write(hash board.ZobristHash, kind NodeType, ply, depth int, score eval.Score, move board.Move) bool {
	if w.Filter(hash, kind, ply, depth, score, move) {
		return false
	}
	return w.TT.Write(hash, kind, ply, depth, score, move)
}

func (w WriteLimited) Size() uint64 {
	return w.TT.Size()
}

func (w WriteLimited) Used() float64 {
	return w.TT.Used()
}

// NewMinDepthTranspositionTable creates depth-limited TranspositionTables.
func NewMinDepthTranspositionTable(min int) TranspositionTableFactory {
	return func(ctx context.Context, size uint64) TranspositionTable {
		return WriteLimited{
			Filter: func(hash board.ZobristHash, kind NodeType, ply, depth int, score eval.Score, move board.Move) bool {
				return depth < min
			},
			TT: NewTranspositionTable(ctx, size),
		}
	}
}

// NoTranspositionTable is a Nop implementation.
type NoTranspositionTable struct{}

func (n NoTranspositionTable) Read(hash board.ZobristHash) (NodeType, int, eval.Score, board.Move, bool) {
	return 0, 0, 0, board.Move{}, false
}

func (n NoTranspositionTable) Write(hash board.ZobristHash, kind NodeType, ply, depth int, score eval.Score, move board.Move) bool {
	return false
}

func (n NoTranspositionTable) Size() uint64 {
	return 0
}

func (n NoTranspositionTable) Used() float64 {
	return 0
}
