// Package export converts a source object hierarchy into a Godot scene
// document. Physics runs as a pre-pass per object: in the source the object
// owns the physics, in the destination the physics body owns the object, so
// body and collision nodes are created before the object's own node.
package export

import (
	"github.com/Faultbox/escn-export/internal/config"
	"github.com/Faultbox/escn-export/internal/scene"
	"github.com/Faultbox/escn-export/pkg/escn"
	"github.com/Faultbox/escn-export/pkg/math"
)

// Output node types that control a simulated body.
const (
	NodeKinematicBody  = "KinematicBody"
	NodeRigidBody      = "RigidBody"
	NodeStaticBody     = "StaticBody"
	NodeCollisionShape = "CollisionShape"
)

func isBodyType(nodeType string) bool {
	switch nodeType {
	case NodeKinematicBody, NodeRigidBody, NodeStaticBody:
		return true
	}
	return false
}

// Exporter drives one export session into a single document.
type Exporter struct {
	doc *escn.Document
	cfg *config.Config
}

// New creates an exporter writing into doc with the given settings.
func New(doc *escn.Document, cfg *config.Config) *Exporter {
	return &Exporter{doc: doc, cfg: cfg}
}

// Document returns the document being built.
func (e *Exporter) Document() *escn.Document { return e.doc }

// ExportScene exports the whole hierarchy under a fresh root node and
// returns that root.
func (e *Exporter) ExportScene(sc *scene.Scene) *escn.Node {
	root := escn.NewNode(sc.Name, "Spatial", nil)
	e.doc.AddNode(root)
	for _, obj := range sc.Roots {
		e.exportObject(obj, root)
	}
	return root
}

// exportObject exports one object and its descendants. For physics-enabled
// objects the physics pre-pass decides the attachment point first.
func (e *Exporter) exportObject(obj *scene.Object, parentGD *escn.Node) {
	attachment := parentGD
	if HasPhysics(obj) {
		attachment = e.ExportPhysicsProperties(obj, attachment)
	}

	objNode := escn.NewNode(obj.Name, "Spatial", attachment)
	if HasPhysics(obj) {
		// Placement already lives on the body/collision nodes.
		objNode.Set("transform", math.Identity())
	} else {
		objNode.Set("transform", obj.Local)
	}
	e.doc.AddNode(objNode)

	for _, child := range obj.Children() {
		e.exportObject(child, objNode)
	}
}
