package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/escn-export/pkg/math"
)

// Scene description errors.
var (
	ErrUnknownShapeType = errors.New("unknown shape type")
	ErrUnknownBodyKind  = errors.New("unknown body kind")
	ErrUnknownParent    = errors.New("unknown parent object")
	ErrUnknownMesh      = errors.New("unknown mesh")
	ErrDuplicateObject  = errors.New("duplicate object name")
)

// Scene is a loaded source hierarchy.
type Scene struct {
	Name  string
	Roots []*Object
}

// Walk visits every object depth-first, roots in file order.
func (s *Scene) Walk(visit func(*Object)) {
	for _, root := range s.Roots {
		root.Walk(visit)
	}
}

type fileScene struct {
	Name    string       `yaml:"name"`
	Meshes  []fileMesh   `yaml:"meshes"`
	Objects []fileObject `yaml:"objects"`
}

type fileMesh struct {
	Name      string       `yaml:"name"`
	Vertices  [][3]float32 `yaml:"vertices"`
	Triangles [][3]int     `yaml:"triangles"`
}

type fileObject struct {
	Name        string         `yaml:"name"`
	Parent      string         `yaml:"parent"`
	Translation [3]float32     `yaml:"translation"`
	RotationDeg [3]float32     `yaml:"rotation_deg"`
	Scale       *[3]float32    `yaml:"scale"`
	Bounds      *fileBounds    `yaml:"bounds"`
	Mesh        string         `yaml:"mesh"`
	RigidBody   *fileRigidBody `yaml:"rigid_body"`
}

type fileBounds struct {
	Min [3]float32 `yaml:"min"`
	Max [3]float32 `yaml:"max"`
}

type fileRigidBody struct {
	Shape            string  `yaml:"shape"`
	Kind             string  `yaml:"kind"`
	Kinematic        bool    `yaml:"kinematic"`
	UseMargin        bool    `yaml:"use_margin"`
	Margin           float32 `yaml:"margin"`
	Friction         float32 `yaml:"friction"`
	Restitution      float32 `yaml:"restitution"`
	LinearDamping    float32 `yaml:"linear_damping"`
	AngularDamping   float32 `yaml:"angular_damping"`
	UseDeactivation  bool    `yaml:"use_deactivation"`
	StartDeactivated bool    `yaml:"start_deactivated"`
	Collections      []bool  `yaml:"collections"`
}

// Parse parses a YAML scene description.
func Parse(data []byte) (*Scene, error) {
	var file fileScene
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scene description: %w", err)
	}

	meshes := make(map[string]*MeshData, len(file.Meshes))
	for _, fm := range file.Meshes {
		data := &MeshData{Name: fm.Name, Triangles: fm.Triangles}
		for _, v := range fm.Vertices {
			data.Vertices = append(data.Vertices, math.Vec3{X: v[0], Y: v[1], Z: v[2]})
		}
		meshes[fm.Name] = data
	}

	sc := &Scene{Name: file.Name}
	objects := make(map[string]*Object, len(file.Objects))

	// Objects must appear after their parent, so one pass suffices.
	for _, fo := range file.Objects {
		if _, exists := objects[fo.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateObject, fo.Name)
		}

		var parent *Object
		if fo.Parent != "" {
			parent = objects[fo.Parent]
			if parent == nil {
				return nil, fmt.Errorf("%w: %q (object %q)", ErrUnknownParent, fo.Parent, fo.Name)
			}
		}

		obj := NewObject(fo.Name, parent)
		obj.Local = localTransform(fo)

		if fo.Mesh != "" {
			data := meshes[fo.Mesh]
			if data == nil {
				return nil, fmt.Errorf("%w: %q (object %q)", ErrUnknownMesh, fo.Mesh, fo.Name)
			}
			obj.Mesh = &StaticMesh{Data: data}
			obj.MeshDataName = fo.Mesh
		}

		if fo.Bounds != nil {
			obj.Bounds = math.Box3{
				Min: math.Vec3{X: fo.Bounds.Min[0], Y: fo.Bounds.Min[1], Z: fo.Bounds.Min[2]},
				Max: math.Vec3{X: fo.Bounds.Max[0], Y: fo.Bounds.Max[1], Z: fo.Bounds.Max[2]},
			}
		} else if fo.Mesh != "" {
			obj.Bounds = math.BoxFromPoints(meshes[fo.Mesh].Vertices)
		}

		if fo.RigidBody != nil {
			rb, err := parseRigidBody(fo.RigidBody)
			if err != nil {
				return nil, fmt.Errorf("object %q: %w", fo.Name, err)
			}
			obj.RigidBody = rb
		}

		objects[fo.Name] = obj
		if parent == nil {
			sc.Roots = append(sc.Roots, obj)
		}
	}

	return sc, nil
}

// LoadFile loads a YAML scene description from disk.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene description: %w", err)
	}
	return Parse(data)
}

func localTransform(fo fileObject) math.Mat4 {
	m := math.Translate(fo.Translation[0], fo.Translation[1], fo.Translation[2])

	const degToRad = math32.Pi / 180
	if fo.RotationDeg[2] != 0 {
		m = m.Mul(math.RotateZ(fo.RotationDeg[2] * degToRad))
	}
	if fo.RotationDeg[1] != 0 {
		m = m.Mul(math.RotateY(fo.RotationDeg[1] * degToRad))
	}
	if fo.RotationDeg[0] != 0 {
		m = m.Mul(math.RotateX(fo.RotationDeg[0] * degToRad))
	}

	if fo.Scale != nil {
		m = m.Mul(math.Scale(fo.Scale[0], fo.Scale[1], fo.Scale[2]))
	}
	return m
}

func parseRigidBody(frb *fileRigidBody) (*RigidBody, error) {
	shape, err := parseShapeType(frb.Shape)
	if err != nil {
		return nil, err
	}
	kind, err := parseBodyKind(frb.Kind)
	if err != nil {
		return nil, err
	}

	collections := frb.Collections
	if len(collections) == 0 {
		// Membership in the first collection is the source default.
		collections = []bool{true}
	}

	return &RigidBody{
		Shape:                shape,
		Kind:                 kind,
		Kinematic:            frb.Kinematic,
		UseMargin:            frb.UseMargin,
		Margin:               frb.Margin,
		Friction:             frb.Friction,
		Restitution:          frb.Restitution,
		LinearDamping:        frb.LinearDamping,
		AngularDamping:       frb.AngularDamping,
		UseDeactivation:      frb.UseDeactivation,
		StartDeactivated:     frb.StartDeactivated,
		CollisionCollections: collections,
	}, nil
}

func parseShapeType(s string) (ShapeType, error) {
	switch s {
	case "box":
		return ShapeBox, nil
	case "sphere":
		return ShapeSphere, nil
	case "capsule":
		return ShapeCapsule, nil
	case "convex_hull":
		return ShapeConvexHull, nil
	case "mesh":
		return ShapeMesh, nil
	case "cylinder":
		return ShapeCylinder, nil
	case "cone":
		return ShapeCone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShapeType, s)
	}
}

func parseBodyKind(s string) (BodyKind, error) {
	switch s {
	case "", "active":
		return BodyActive, nil
	case "passive":
		return BodyPassive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBodyKind, s)
	}
}
