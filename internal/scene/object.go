package scene

import "github.com/Faultbox/escn-export/pkg/math"

// Object is one node in the source hierarchy. An object carries physics iff
// RigidBody is non-nil.
type Object struct {
	Name string

	// Local is the transform relative to the parent.
	Local math.Mat4

	// Bounds is the object's local-space bounding box.
	Bounds math.Box3

	// RigidBody is the physics descriptor, nil for non-physics objects.
	RigidBody *RigidBody

	// Mesh provides triangulated geometry on demand; nil for objects
	// without mesh data.
	Mesh MeshProvider

	// MeshDataName identifies the shared mesh datablock this object
	// instances. Objects with equal names share geometry.
	MeshDataName string

	parent   *Object
	children []*Object
}

// NewObject creates an object with an identity local transform under parent.
// A nil parent makes it a hierarchy root.
func NewObject(name string, parent *Object) *Object {
	obj := &Object{Name: name, Local: math.Identity(), parent: parent}
	if parent != nil {
		parent.children = append(parent.children, obj)
	}
	return obj
}

// Parent returns the parent object, or nil at the top of the hierarchy.
func (o *Object) Parent() *Object { return o.parent }

// Children returns the direct children in insertion order.
func (o *Object) Children() []*Object { return o.children }

// World returns the object's world transform, composed from the hierarchy.
func (o *Object) World() math.Mat4 {
	if o.parent == nil {
		return o.Local
	}
	return o.parent.World().Mul(o.Local)
}

// Walk visits o and every descendant depth-first in insertion order.
func (o *Object) Walk(visit func(*Object)) {
	visit(o)
	for _, child := range o.children {
		child.Walk(visit)
	}
}
