package export

import (
	"github.com/Faultbox/escn-export/internal/scene"
	"github.com/Faultbox/escn-export/pkg/escn"
)

// ExportPhysicsProperties creates the output nodes for one physics-enabled
// object: a body-controller node when the object is a physics root, then the
// collision-shape node. Returns the collision node, which becomes the
// attachment point for the object itself.
func (e *Exporter) ExportPhysicsProperties(obj *scene.Object, parentGD *escn.Node) *escn.Node {
	parentRBD := PhysicsRoot(obj)

	if parentRBD == nil {
		parentGD = e.exportPhysicsBody(obj, parentGD)
	}

	// Trace the output ancestry towards the root to find the nearest body
	// node. Intermediate container nodes can sit between the attachment
	// point and the body, and body creation can restructure the
	// attachment mid-pass, so this is recomputed every time.
	bodyNode := parentGD
	for !isBodyType(bodyNode.Type()) {
		bodyNode = bodyNode.Parent()
	}

	return e.exportCollisionShape(obj, bodyNode, parentRBD)
}
