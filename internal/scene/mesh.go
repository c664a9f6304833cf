package scene

import "github.com/Faultbox/escn-export/pkg/math"

// MeshData is triangulated geometry produced by a MeshProvider.
type MeshData struct {
	Name      string
	Vertices  []math.Vec3
	Triangles [][3]int
}

// MeshProvider produces an object's evaluated, triangulated mesh on demand.
// ToMeshClear releases any transient state and must be called after ToMesh
// on every path, success or not.
type MeshProvider interface {
	// ToMesh returns the evaluated mesh, or nil when the object has no
	// usable geometry. preserveVertexGroups and calculateTangents select
	// the attribute sets the evaluation keeps.
	ToMesh(preserveVertexGroups, calculateTangents bool) *MeshData
	// ToMeshClear frees the transient mesh produced by the last ToMesh.
	ToMeshClear()
}

// StaticMesh is a MeshProvider backed by in-memory geometry, as loaded from
// a scene description file.
type StaticMesh struct {
	Data *MeshData

	evaluated *MeshData
}

// ToMesh returns a transient copy of the stored geometry, or nil when the
// mesh has no data.
func (m *StaticMesh) ToMesh(preserveVertexGroups, calculateTangents bool) *MeshData {
	if m.Data == nil {
		return nil
	}
	// Attribute selection does not change positions, which is all static
	// geometry carries.
	_ = preserveVertexGroups
	_ = calculateTangents
	m.evaluated = &MeshData{
		Name:      m.Data.Name,
		Vertices:  m.Data.Vertices,
		Triangles: m.Data.Triangles,
	}
	return m.evaluated
}

// ToMeshClear drops the transient mesh.
func (m *StaticMesh) ToMeshClear() {
	m.evaluated = nil
}
