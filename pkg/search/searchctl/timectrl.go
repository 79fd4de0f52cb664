package searchctl

import (
	"context"
	"fmt"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"time"
)

// TimeControl represents time control information.
type TimeControl struct {
	White, Black time.Duration
	Moves        int // 0 == rest of game, not used by the time budgeting formula
}

// Slice returns the time budget for one move (§4.8):
//
//	slice = side_time / max(1, 60 − moves_made)   if moves_made < 60
//	slice = side_time / max(1, 150 − moves_made)  otherwise
//
// where side_time is the remaining clock of the side to move and moves_made is the number of
// full moves already played in the game.
func (t TimeControl) Slice(c board.Color, movesMade int) time.Duration {
	remainder := t.White
	if c == board.Black {
		remainder = t.Black
	}

	denom := 60 - movesMade
	if movesMade >= 60 {
		denom = 150 - movesMade
	}
	if denom < 1 {
		denom = 1
	}

	return remainder / time.Duration(denom)
}

func (t TimeControl) String() string {
	if t.Moves == 0 {
		return fmt.Sprintf("%.1f<>%.1f", t.White.Seconds(), t.Black.Seconds())
	}
	return fmt.Sprintf("%.1f<>%.1f[moves=%v]", t.White.Seconds(), t.Black.Seconds(), t.Moves)
}

// EnforceTimeControl enforces the time control slice, if any, halting h once it elapses. Returns
// the slice and whether a time control was in effect.
func EnforceTimeControl(ctx context.Context, h Handle, tc lang.Optional[TimeControl], turn board.Color, movesMade int) (time.Duration, bool) {
	c, ok := tc.V()
	if !ok {
		return 0, false
	}

	slice := c.Slice(turn, movesMade)
	time.AfterFunc(slice, func() {
		h.Halt()
	})

	logw.Debugf(ctx, "Time control slice for %v at move %v: %v", c, movesMade, slice)
	return slice, true
}
