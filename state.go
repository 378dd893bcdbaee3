package crawler

import (
	"github.com/adammck/crawler/math3d"
)

// Joint identifies one of the six leg joints.
type Joint int

const (
	UpperLeft Joint = iota
	MidLeft
	LowerLeft
	UpperRight
	MidRight
	LowerRight

	NumLegs = 6
)

var jointNames = [NumLegs]string{
	UpperLeft:  "upper_left",
	MidLeft:    "mid_left",
	LowerLeft:  "lower_left",
	UpperRight: "upper_right",
	MidRight:   "mid_right",
	LowerRight: "lower_right",
}

func (j Joint) String() string {
	if j < 0 || int(j) >= NumLegs {
		return "unknown"
	}

	return jointNames[j]
}

// Phase is the half of the gait cycle which is currently being played. It is
// only ever 0 or 1.
type Phase int

// Flip returns the other phase.
func (p Phase) Flip() Phase {
	return 1 - p
}

// Joints holds the local orientation of each animated part of the body. Legs
// are kept as Euler angles because the gait only ever drives their pitch.
type Joints struct {
	Legs [NumLegs]math3d.EulerAngles
	Body math3d.Quaternion
}

type GaitState struct {
	Phase Phase

	// Time since the phase last flipped.
	SinceSwitch float64

	// Time since the phase began, used to stagger the lead leg.
	SinceStep float64
}

// AvoidanceState records whether the creature is walking or turning away from
// an obstacle. MustTurn and CanWalkStraight are never both true.
type AvoidanceState struct {
	MustTurn        bool
	CanWalkStraight bool
	TurnElapsed     float64
}

// Turning returns true while an avoidance turn is in progress.
func (as AvoidanceState) Turning() bool {
	return as.MustTurn
}

type State struct {
	Pose      math3d.Pose
	Joints    Joints
	Gait      GaitState
	Avoidance AvoidanceState

	// Number of ticks completed, and the sum of their durations.
	Ticks   int
	Elapsed float64
}

// NewState returns the spawn state of a creature at the given pose, walking
// straight, in phase zero.
func NewState(pose math3d.Pose, joints Joints) *State {
	return &State{
		Pose:   pose,
		Joints: joints,
		Avoidance: AvoidanceState{
			CanWalkStraight: true,
		},
	}
}
