package export

import "github.com/Faultbox/escn-export/internal/scene"

// HasPhysics returns true if the object has physics enabled.
func HasPhysics(obj *scene.Object) bool {
	return obj.RigidBody != nil
}

// IsPhysicsRoot checks whether this object is the root of its physics tree,
// i.e. none of its ancestors carry physics.
func IsPhysicsRoot(obj *scene.Object) bool {
	return PhysicsRoot(obj) == nil
}

// PhysicsRoot checks upstream for other rigid bodies (to allow compound
// shapes) and returns the upstream-most one. The walk continues to the top
// of the hierarchy, overwriting the candidate on every further match, so a
// chain of physics-enabled ancestors collapses onto the outermost body.
// Returns nil when no ancestor has physics.
func PhysicsRoot(obj *scene.Object) *scene.Object {
	var parentRBD *scene.Object
	current := obj
	for current.Parent() != nil {
		if current.Parent().RigidBody != nil {
			parentRBD = current.Parent()
		}
		current = current.Parent()
	}
	return parentRBD
}
