// Package rig copies the creature's state to and from the host's transforms.
package rig

import (
	"fmt"

	"github.com/adammck/crawler"
	"github.com/adammck/crawler/math3d"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "rig",
})

// Rig is the set of host transforms which the creature drives. Root carries the
// pose; legs and body carry the joints.
type Rig struct {
	Root crawler.Transform
	Body crawler.Transform
	Legs [crawler.NumLegs]crawler.Transform
}

// Finder looks up a transform by name.
type Finder func(name string) (crawler.Transform, error)

// Bind finds the root, body, and every leg (by joint name) with f.
func Bind(f Finder, root, body string) (*Rig, error) {
	r := &Rig{}
	var err error

	r.Root, err = f(root)
	if err != nil {
		return nil, fmt.Errorf("%w (while binding root)", err)
	}

	r.Body, err = f(body)
	if err != nil {
		return nil, fmt.Errorf("%w (while binding body)", err)
	}

	for i := range r.Legs {
		j := crawler.Joint(i)
		r.Legs[i], err = f(j.String())
		if err != nil {
			return nil, fmt.Errorf("%w (while binding leg %s)", err, j)
		}
	}

	return r, nil
}

// Capture reads the spawn state of the creature from its transforms.
func (r *Rig) Capture() *crawler.State {
	j := crawler.Joints{
		Body: r.Body.LocalRotation(),
	}

	for i, t := range r.Legs {
		j.Legs[i] = t.LocalRotation().EulerAngles()
	}

	p := math3d.Pose{
		Position:    r.Root.Position(),
		Orientation: r.Root.LocalRotation(),
	}

	log.Infof("captured %s", p)
	return crawler.NewState(p, j)
}

// Apply writes the pose and joints to the transforms.
func (r *Rig) Apply(state *crawler.State) {
	r.Root.SetPosition(state.Pose.Position)
	r.Root.SetLocalRotation(state.Pose.Orientation)
	r.Body.SetLocalRotation(state.Joints.Body)

	for i, t := range r.Legs {
		t.SetLocalRotation(state.Joints.Legs[i].Quaternion())
	}
}

func (r *Rig) Boot() error {
	return nil
}

func (r *Rig) Tick(dt float64, state *crawler.State) error {
	r.Apply(state)
	return nil
}
