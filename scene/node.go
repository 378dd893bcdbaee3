package scene

import (
	"fmt"

	"github.com/adammck/crawler/math3d"
)

// Node is one transform in a parent/child hierarchy. Its position and rotation
// are relative to the parent, or to the world for a root node.
type Node struct {
	Name     string
	parent   *Node
	Children []*Node
	position math3d.Vector3
	rotation math3d.Quaternion
}

func MakeNode(name string, parent *Node, pos math3d.Vector3, rot math3d.Quaternion) *Node {
	n := &Node{
		Name:     name,
		parent:   parent,
		position: pos,
		rotation: rot,
	}

	if parent != nil {
		parent.Children = append(parent.Children, n)
	}

	return n
}

func MakeRootNode(name string, pos math3d.Vector3) *Node {
	return MakeNode(name, nil, pos, math3d.IdentityQuaternion)
}

func (n *Node) String() string {
	return fmt.Sprintf("&Node{%s: %s %s children=%d}", n.Name, n.position, n.rotation, len(n.Children))
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Position() math3d.Vector3 {
	return n.position
}

func (n *Node) SetPosition(v math3d.Vector3) {
	n.position = v
}

func (n *Node) LocalRotation() math3d.Quaternion {
	return n.rotation
}

func (n *Node) SetLocalRotation(q math3d.Quaternion) {
	n.rotation = q
}

// Pose returns the node's position and rotation in its parent's space.
func (n *Node) Pose() math3d.Pose {
	return math3d.Pose{Position: n.position, Orientation: n.rotation}
}

// WorldMatrix returns a Matrix44 which can be applied to a vector in this
// node's coordinate space to convert it to the world space.
func (n *Node) WorldMatrix() *math3d.Matrix44 {
	m := math3d.MakeMatrix44(n.position, n.rotation)

	if n.parent != nil {
		return math3d.MultiplyMatrices(*m, *n.parent.WorldMatrix())
	}

	return m
}

// Project transforms a vector in this node's coordinate space into the world
// space.
func (n *Node) Project(v math3d.Vector3) math3d.Vector3 {
	return v.MultiplyByMatrix44(*n.WorldMatrix())
}

// WorldPosition returns the origin of this node in the world space.
func (n *Node) WorldPosition() math3d.Vector3 {
	return n.Project(math3d.ZeroVector3)
}

// Local transforms a vector in the world space into this node's space.
func (n *Node) Local(v math3d.Vector3) math3d.Vector3 {
	return v.MultiplyByMatrix44(n.WorldMatrix().Inverse())
}
