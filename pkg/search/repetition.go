package search

import "github.com/corvidchess/corvid/pkg/board"

// RepetitionTable counts visits to each position hash along the current search path. It is
// distinct from Board's own game-history repetition detection: Board only knows about moves
// already played in the real game, while this table tracks the hypothetical path the search is
// currently exploring, and must be rolled back on backtrack.
//
// Cleared once per `go` command rather than once per iterative-deepening depth: see DESIGN.md
// for the open-question resolution.
type RepetitionTable struct {
	counts map[board.ZobristHash]uint16
}

func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: map[board.ZobristHash]uint16{}}
}

// Push records a visit to hash and returns the count after recording it.
func (t *RepetitionTable) Push(hash board.ZobristHash) uint16 {
	t.counts[hash]++
	return t.counts[hash]
}

// Pop undoes the most recent Push for hash.
func (t *RepetitionTable) Pop(hash board.ZobristHash) {
	if n := t.counts[hash]; n <= 1 {
		delete(t.counts, hash)
	} else {
		t.counts[hash] = n - 1
	}
}

// Reset clears all recorded visits.
func (t *RepetitionTable) Reset() {
	for k := range t.counts {
		delete(t.counts, k)
	}
}
