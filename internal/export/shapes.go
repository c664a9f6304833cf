package export

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/escn-export/internal/logger"
	"github.com/Faultbox/escn-export/internal/scene"
	"github.com/Faultbox/escn-export/pkg/escn"
	"github.com/Faultbox/escn-export/pkg/math"
)

// meshShapeKey deduplicates mesh-derived collision resources by content:
// two objects instancing the same mesh data with the same margin share one
// resource. Primitive shapes are keyed by the descriptor itself instead and
// are never shared across objects.
type meshShapeKey struct {
	shapeType string
	margin    float32
	geometry  string
}

func (e *Exporter) meshKey(shapeType string, obj *scene.Object) meshShapeKey {
	var margin float32
	if obj.RigidBody.UseMargin {
		margin = obj.RigidBody.Margin
	}
	return meshShapeKey{
		shapeType: shapeType,
		margin:    margin,
		geometry:  obj.MeshDataName + "/" + e.cfg.GeometryOptions(),
	}
}

// generatePrimitiveShape derives a box, sphere or capsule resource from the
// object's local bounding box. Unknown shape kinds produce a warning and a
// null reference.
func (e *Exporter) generatePrimitiveShape(obj *scene.Object, name string) escn.SubResource {
	rb := obj.RigidBody
	bounds := obj.Bounds.Extents()

	var shape *escn.Resource
	switch rb.Shape {
	case scene.ShapeBox:
		shape = escn.NewResource("BoxShape", name)
		shape.Set("extents", bounds.Scale(0.5))

	case scene.ShapeSphere:
		shape = escn.NewResource("SphereShape", name)
		shape.Set("radius", bounds.MaxComponent()/2)

	case scene.ShapeCapsule:
		shape = escn.NewResource("CapsuleShape", name)
		radius := math32.Max(bounds.X, bounds.Y) / 2
		shape.Set("radius", radius)
		// A bounding box flatter than it is wide yields a negative
		// height here.
		shape.Set("height", bounds.Z-radius*2)

	default:
		logger.Warn("unable to export physics shape",
			zap.String("object", obj.Name),
			zap.Stringer("shape", rb.Shape),
		)
		return escn.NullRef()
	}

	if rb.UseMargin {
		shape.Set("margin", rb.Margin)
	}

	return escn.Ref(e.doc.AddInternalResource(shape, rb))
}

// generateConvexShape builds a convex hull resource from the object's mesh,
// or returns the cached one. The second return is false when the object
// yields no usable geometry.
func (e *Exporter) generateConvexShape(obj *scene.Object) (escn.ResourceID, bool) {
	key := e.meshKey("ConvexPolygonShape", obj)
	if id, ok := e.doc.GetInternalResource(key); ok {
		return id, true
	}

	if obj.Mesh == nil {
		return 0, false
	}
	defer obj.Mesh.ToMeshClear()

	mesh := obj.Mesh.ToMesh(false, false)
	if mesh == nil {
		return 0, false
	}

	shape := escn.NewResource("ConvexPolygonShape", mesh.Name)
	shape.Set("points", append([]math.Vec3(nil), mesh.Vertices...))
	if obj.RigidBody.UseMargin {
		shape.Set("margin", obj.RigidBody.Margin)
	}

	return e.doc.AddInternalResource(shape, key), true
}

// generateConcaveShape builds a concave triangle-mesh resource from the
// object's mesh, or returns the cached one. Triangle vertices are emitted in
// reversed order to flip the winding for the destination convention.
func (e *Exporter) generateConcaveShape(obj *scene.Object) (escn.ResourceID, bool) {
	key := e.meshKey("ConcavePolygonShape", obj)
	if id, ok := e.doc.GetInternalResource(key); ok {
		return id, true
	}

	if obj.Mesh == nil {
		return 0, false
	}
	defer obj.Mesh.ToMeshClear()

	mesh := obj.Mesh.ToMesh(false, false)
	if mesh == nil || len(mesh.Triangles) == 0 {
		return 0, false
	}

	verts := make([]math.Vec3, 0, len(mesh.Triangles)*3)
	for _, tri := range mesh.Triangles {
		for i := 2; i >= 0; i-- {
			verts = append(verts, mesh.Vertices[tri[i]])
		}
	}

	shape := escn.NewResource("ConcavePolygonShape", mesh.Name)
	shape.Set("data", verts)
	if obj.RigidBody.UseMargin {
		shape.Set("margin", obj.RigidBody.Margin)
	}

	return e.doc.AddInternalResource(shape, key), true
}
