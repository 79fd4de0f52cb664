package eval

import (
	"fmt"
	"math"

	"github.com/corvidchess/corvid/pkg/board"
)

// Score is a signed position or move score in centipawns. Evaluator results are from White's
// perspective (positive favors White); search results are from the side to move's. Mate scores
// are encoded as MATE minus the distance in plies to the mating move, so that shorter mates sort
// above longer ones.
type Score int32

const (
	Zero Score = 0

	// MATE is the score of delivering mate on the current move. A found mate is reported as
	// MATE - ply, decaying as the mate recedes from the root.
	MATE Score = 10_000_000

	// INF bounds the alpha-beta search window; its negation is the corresponding lower bound.
	// Kept one unit inside the Score type's range so that negation never overflows.
	INF    Score = math.MaxInt32 - 1
	NegInf Score = -INF

	// Invalid marks the absence of a usable window bound or search result, distinct from any
	// real score including NegInf/INF.
	Invalid Score = math.MaxInt32
)

// IsInvalid returns true iff the score is the Invalid sentinel.
func (s Score) IsInvalid() bool {
	return s == Invalid
}

// Less reports whether s is strictly less than o.
func (s Score) Less(o Score) bool {
	return s < o
}

func (s Score) String() string {
	return fmt.Sprintf("%+d cp", int32(s))
}

// Negate flips the score to the opponent's perspective, as negamax requires at every ply.
func (s Score) Negate() Score {
	return -s
}

// MaxPly bounds the mate-distance encoding: any ply count beyond this is treated as a
// non-mate score, well beyond any depth the search actually reaches.
const MaxPly = 1024

// IsMate returns true iff the score represents a forced mate for either side.
func (s Score) IsMate() bool {
	return s > MATE-MaxPly || s < -(MATE-MaxPly)
}

// MateIn returns the number of moves to mate implied by a mate score, positive if the side to
// move delivers it, negative if it is delivered against the side to move. Only meaningful when
// IsMate() is true.
func (s Score) MateIn() int {
	if s > 0 {
		return (int(MATE-s) + 1) / 2
	}
	return -(int(MATE+s) + 1) / 2
}

// MateDistance returns the number of plies to the mating move, if s is a mate score.
func (s Score) MateDistance() (uint, bool) {
	switch {
	case s > MATE-MaxPly:
		return uint(MATE - s), true
	case s < -(MATE - MaxPly):
		return uint(MATE + s), true
	default:
		return 0, false
	}
}

// IncrementMateDistance widens a mate score by one ply as it is returned up a level of
// recursion, so that mates closer to the root keep sorting above mates found deeper in the
// tree. A non-mate score passes through unchanged.
func IncrementMateDistance(s Score) Score {
	switch {
	case s > MATE-MaxPly:
		return s - 1
	case s < -(MATE - MaxPly):
		return s + 1
	default:
		return s
	}
}

// Crop clamps a score into the representable window, away from the internal sentinel values.
func Crop(s Score) Score {
	switch {
	case s > INF:
		return INF
	case s < NegInf:
		return NegInf
	default:
		return s
	}
}

// HeuristicScore orients a White-perspective evaluation to the side to move, as negamax search
// requires.
func HeuristicScore(s Score, turn board.Color) Score {
	return Score(turn.Unit()) * s
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
