package export

import (
	"github.com/Faultbox/escn-export/internal/scene"
	"github.com/Faultbox/escn-export/pkg/escn"
)

// exportPhysicsBody creates the body-controller node for a physics root. In
// the source format the body kind and the collision shape live on one
// object; in the destination they are two nodes, and this is the body.
func (e *Exporter) exportPhysicsBody(obj *scene.Object, parentGD *escn.Node) *escn.Node {
	rb := obj.RigidBody

	var bodyType string
	if rb.Kind == scene.BodyActive {
		if rb.Kinematic {
			bodyType = NodeKinematicBody
		} else {
			bodyType = NodeRigidBody
		}
	} else {
		bodyType = NodeStaticBody
	}

	body := escn.NewNode(obj.Name+"Physics", bodyType, parentGD)

	if bodyType != NodeKinematicBody {
		// Materials are never shared between bodies.
		mat := escn.NewResource("PhysicsMaterial", obj.Name+"PhysicsMaterial")
		mat.Set("friction", rb.Friction)
		mat.Set("bounce", rb.Restitution)
		rid := e.doc.ForceAddInternalResource(mat)
		body.Set("physics_material_override", escn.Ref(rid))
	}

	groups := rb.CollisionGroups()

	// Axis correction is applied at the collision-shape level only.
	body.Set("transform", obj.Local)
	body.Set("collision_layer", groups)
	body.Set("collision_mask", groups)

	if bodyType == NodeRigidBody {
		body.Set("can_sleep", rb.UseDeactivation)
		body.Set("linear_damp", rb.LinearDamping)
		body.Set("angular_damp", rb.AngularDamping)
		body.Set("sleeping", rb.StartDeactivated)
	}

	e.doc.AddNode(body)

	return body
}
