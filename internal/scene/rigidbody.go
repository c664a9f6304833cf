// Package scene models the source side of an export: the object hierarchy,
// per-object rigid-body descriptors and on-demand mesh geometry.
package scene

import "fmt"

// ShapeType selects the collision shape derived for an object.
type ShapeType uint8

// Shape type constants.
const (
	ShapeBox        ShapeType = iota // box from the local bounding box
	ShapeSphere                      // sphere from the largest bound
	ShapeCapsule                     // capsule along the Z axis
	ShapeConvexHull                  // convex hull of the mesh vertices
	ShapeMesh                        // concave triangle mesh
	ShapeCylinder                    // present in source data, not exportable
	ShapeCone                        // present in source data, not exportable
)

// String returns a human-readable shape type name.
func (t ShapeType) String() string {
	switch t {
	case ShapeBox:
		return "Box"
	case ShapeSphere:
		return "Sphere"
	case ShapeCapsule:
		return "Capsule"
	case ShapeConvexHull:
		return "ConvexHull"
	case ShapeMesh:
		return "Mesh"
	case ShapeCylinder:
		return "Cylinder"
	case ShapeCone:
		return "Cone"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// BodyKind is the mass behavior of a rigid body.
type BodyKind uint8

// Body kind constants.
const (
	BodyActive  BodyKind = iota // simulated, moved by the physics engine
	BodyPassive                 // static collider, never moves
)

// String returns a human-readable body kind name.
func (k BodyKind) String() string {
	switch k {
	case BodyActive:
		return "Active"
	case BodyPassive:
		return "Passive"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// RigidBody is the physics descriptor carried by a physics-enabled object.
type RigidBody struct {
	Shape     ShapeType
	Kind      BodyKind
	Kinematic bool

	UseMargin bool
	Margin    float32

	Friction    float32
	Restitution float32

	LinearDamping  float32
	AngularDamping float32

	// UseDeactivation allows the body to sleep; StartDeactivated spawns it
	// already sleeping.
	UseDeactivation  bool
	StartDeactivated bool

	// CollisionCollections is the ordered membership set; index = bit
	// position in the exported collision layer/mask.
	CollisionCollections []bool
}

// CollisionGroups folds the ordered collection flags into a bitmask,
// bit i set iff collection i is enabled (bit 0 = LSB).
func (rb *RigidBody) CollisionGroups() int {
	groups := 0
	for offset, flag := range rb.CollisionCollections {
		if flag {
			groups |= 1 << offset
		}
	}
	return groups
}
