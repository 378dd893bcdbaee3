package gait

import (
	"github.com/adammck/crawler"
)

// Bound is the end of a joint's swing which a move heads towards.
type Bound int

const (
	Min Bound = iota
	Max
)

// Lean is the pose which the body tilts towards during a phase.
type Lean int

const (
	Forward Lean = iota
	Backward
)

// Move drives one joint towards one end of its range. Gated moves wait for the
// step cooldown to pass before they start.
type Move struct {
	Joint  crawler.Joint
	Toward Bound
	Gated  bool
}

// Frame is everything which happens during one phase.
type Frame struct {
	Moves []Move
	Lean  Lean
}

type Gait struct {
	frames         [2]Frame
	switchInterval float64
}

// Frame returns the moves for the given phase.
func (g *Gait) Frame(p crawler.Phase) Frame {
	return g.frames[p]
}

// Advance adds dt to the phase timer, and flips the phase once the timer has
// reached the switch interval. Both timers are then zeroed, so a single tick
// flips at most once, however long it is. Returns true if the phase flipped.
func (g *Gait) Advance(gs *crawler.GaitState, dt float64) bool {
	gs.SinceSwitch += dt

	if gs.SinceSwitch+epsilon < g.switchInterval {
		return false
	}

	gs.Phase = gs.Phase.Flip()
	gs.SinceSwitch = 0
	gs.SinceStep = 0
	return true
}

// Timers are sums of float ticks, so allow a little slack when comparing them
// to the interval. Otherwise ten ticks of 0.1 would not add up to 1.
const epsilon = 1e-9
