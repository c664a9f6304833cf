package export

import (
	"github.com/Faultbox/escn-export/internal/scene"
	"github.com/Faultbox/escn-export/pkg/escn"
	"github.com/Faultbox/escn-export/pkg/math"
)

// exportCollisionShape creates the collision-shape node for one object under
// the resolved body node. rootOverride is the compound root the transform is
// expressed against; nil when the object is itself the physics root.
func (e *Exporter) exportCollisionShape(obj *scene.Object, bodyNode *escn.Node, rootOverride *scene.Object) *escn.Node {
	colName := obj.Name + "Collision"
	colNode := escn.NewNode(colName, NodeCollisionShape, bodyNode)

	var transform math.Mat4
	if rootOverride == nil {
		transform = math.Identity()
	} else {
		transform = rootOverride.World().Inverse().Mul(obj.World())
	}
	colNode.Set("transform", transform.Mul(escn.AxisCorrect))

	switch obj.RigidBody.Shape {
	case scene.ShapeConvexHull:
		if id, ok := e.generateConvexShape(obj); ok {
			colNode.Set("shape", escn.Ref(id))
		}
	case scene.ShapeMesh:
		if id, ok := e.generateConcaveShape(obj); ok {
			colNode.Set("shape", escn.Ref(id))
		}
	default:
		// The reference stays attached even when generation produced
		// nothing; it serializes as null.
		colNode.Set("shape", e.generatePrimitiveShape(obj, colName))
	}

	e.doc.AddNode(colNode)

	return colNode
}
