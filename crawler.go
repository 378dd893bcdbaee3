package crawler

import (
	"github.com/adammck/crawler/math3d"
)

// Agent is a single creature. It owns its state exclusively, and ticks its
// components against it in the order that they were added.
type Agent struct {
	Components []Component
	State      *State

	// Components can set this to true to indicate that the run should end.
	Shutdown bool
}

type Component interface {
	Boot() error
	Tick(dt float64, state *State) error
}

// NewAgent creates a new Agent with the given spawn state.
func NewAgent(state *State) *Agent {
	return &Agent{
		Components: []Component{},
		State:      state,
	}
}

// Add registers a component to receive ticks every frame.
func (a *Agent) Add(c Component) {
	a.Components = append(a.Components, c)
}

// Boot calls Boot on each component.
func (a *Agent) Boot() error {
	for _, c := range a.Components {
		err := c.Boot()
		if err != nil {
			return err
		}
	}

	return nil
}

// Tick advances the state by dt, calling Tick on each component in order. The
// first error aborts the rest of the tick.
func (a *Agent) Tick(dt float64) error {
	for _, c := range a.Components {
		err := c.Tick(dt, a.State)
		if err != nil {
			return err
		}
	}

	a.State.Ticks += 1
	a.State.Elapsed += dt
	return nil
}

// World returns a matrix to transform a vector in the agent's coordinate space
// into the world space.
func (a *Agent) World() math3d.Matrix44 {
	return a.State.Pose.World()
}

// Local returns a matrix to transform a vector in the world coordinate space
// into the agent's space, taking into account its current position and
// rotation.
func (a *Agent) Local() math3d.Matrix44 {
	return a.State.Pose.Local()
}
