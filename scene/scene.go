// Package scene is an in-memory transform hierarchy, standing in for the host
// engine's scene graph when the crawler runs on its own.
package scene

import (
	"fmt"

	"github.com/adammck/crawler"
	"github.com/adammck/crawler/config"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "scene",
})

type Scene struct {
	Roots []*Node
	nodes map[string]*Node
}

// Build creates the nodes of a rig. Every parent must be listed before its
// children; nodes without a parent become roots.
func Build(rc config.RigConfig) (*Scene, error) {
	s := &Scene{
		nodes: map[string]*Node{},
	}

	for _, nc := range rc.Nodes {
		if nc.Name == "" {
			return nil, fmt.Errorf("node with no name (while building scene)")
		}

		if _, ok := s.nodes[nc.Name]; ok {
			return nil, fmt.Errorf("duplicate node: %s (while building scene)", nc.Name)
		}

		var parent *Node
		if nc.Parent != "" {
			p, ok := s.nodes[nc.Parent]
			if !ok {
				return nil, fmt.Errorf("unknown parent %s of node %s (while building scene)", nc.Parent, nc.Name)
			}
			parent = p
		}

		n := MakeNode(nc.Name, parent, nc.Position.Vector3(), nc.Rotation.Quaternion())
		if parent == nil {
			s.Roots = append(s.Roots, n)
		}

		s.nodes[nc.Name] = n
		log.Debugf("built %s", n)
	}

	return s, nil
}

// Find returns the node with the given name.
func (s *Scene) Find(name string) (*Node, error) {
	n, ok := s.nodes[name]
	if !ok {
		return nil, fmt.Errorf("no such node: %s", name)
	}

	return n, nil
}

func (s *Scene) Len() int {
	return len(s.nodes)
}

// Transform returns the named node as a crawler.Transform.
func (s *Scene) Transform(name string) (crawler.Transform, error) {
	n, err := s.Find(name)
	if err != nil {
		return nil, err
	}

	return n, nil
}
