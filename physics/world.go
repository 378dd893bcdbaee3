// Package physics answers the crawler's probes against static obstacles, using
// a chipmunk space laid out on the ground plane. World X maps to chipmunk X,
// and world Z to chipmunk Y.
package physics

import (
	"fmt"

	"github.com/adammck/crawler"
	"github.com/adammck/crawler/config"
	"github.com/adammck/crawler/math3d"
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "physics",
})

// span is the vertical extent of an obstacle, stored in its shape's UserData.
type span struct {
	name   string
	bottom float64
	top    float64
}

type World struct {
	space *cp.Space
	count int
}

func NewWorld() *World {
	return &World{
		space: cp.NewSpace(),
	}
}

// Load builds a world containing every obstacle in the config.
func Load(wc config.WorldConfig) (*World, error) {
	w := NewWorld()

	for _, oc := range wc.Obstacles {
		if err := w.Add(oc); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// Add inserts a static obstacle.
func (w *World) Add(oc config.ObstacleConfig) error {
	var shape *cp.Shape
	c := ground(oc.Center.Vector3())

	switch oc.Shape {
	case config.ShapeBox:
		bb := cp.BB{
			L: c.X - oc.Size.X/2,
			B: c.Y - oc.Size.Z/2,
			R: c.X + oc.Size.X/2,
			T: c.Y + oc.Size.Z/2,
		}
		shape = cp.NewBox2(w.space.StaticBody, bb, 0)

	case config.ShapeCircle:
		shape = cp.NewCircle(w.space.StaticBody, oc.Radius, c)

	default:
		return fmt.Errorf("unknown shape %q of obstacle %s (while loading world)", oc.Shape, oc.Name)
	}

	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, oc.Layer, cp.ALL_CATEGORIES))
	shape.UserData = span{
		name:   oc.Name,
		bottom: oc.Center.Y,
		top:    oc.Center.Y + oc.Height,
	}

	w.space.AddShape(shape)
	w.count += 1

	log.Debugf("added %s %s at %s", oc.Shape, oc.Name, oc.Center.Vector3())
	return nil
}

func (w *World) Len() int {
	return w.count
}

// Probe returns true if a ray from origin along direction hits any obstacle on
// the given layers within maxDistance. The obstacle must be hit between its
// bottom and top; rays passing over or under it miss.
func (w *World) Probe(origin, direction math3d.Vector3, maxDistance float64, layers crawler.Layer) bool {
	if maxDistance <= 0 || direction.Zero() {
		return false
	}

	end := *origin.Add(direction.Unit().MultiplyByScalar(maxDistance))
	a := ground(origin)
	b := ground(end)

	// Straight up or down never meets a wall.
	if a.Distance(b) < 1e-9 {
		return false
	}

	hit := false
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(layers))

	w.space.SegmentQuery(a, b, 0, filter, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
		s, ok := shape.UserData.(span)
		if !ok {
			return
		}

		y := origin.Y + alpha*(end.Y-origin.Y)
		if y >= s.bottom && y <= s.top {
			log.Debugf("probe hit %s at alpha=%.3f y=%.3f", s.name, alpha, y)
			hit = true
		}
	}, nil)

	return hit
}

func ground(v math3d.Vector3) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}
