package escn

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/escn-export/pkg/math"
)

// AxisCorrect converts from the source convention (Z up) to the destination
// convention (Y up): a rotation of -90 degrees about the X axis. Applied once
// per collision-shape transform, never at the body level.
var AxisCorrect = math.RotateX(-math32.Pi / 2)

// Document is one export session's output: the scene node tree and the
// internal resource table. The resource cache lives and dies with the
// document, so a fresh document means a fresh cache.
type Document struct {
	resources []*Resource
	ids       map[any]ResourceID
	nodes     []*Node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{ids: make(map[any]ResourceID)}
}

// AddInternalResource registers res under key and returns its id. Repeated
// calls with an equal key return the first id without registering again.
func (d *Document) AddInternalResource(res *Resource, key any) ResourceID {
	if id, ok := d.ids[key]; ok {
		return id
	}
	id := d.append(res)
	d.ids[key] = id
	return id
}

// GetInternalResource looks up the id registered under key without creating
// anything.
func (d *Document) GetInternalResource(key any) (ResourceID, bool) {
	id, ok := d.ids[key]
	return id, ok
}

// ForceAddInternalResource registers res under a fresh id with no
// deduplication.
func (d *Document) ForceAddInternalResource(res *Resource) ResourceID {
	return d.append(res)
}

func (d *Document) append(res *Resource) ResourceID {
	d.resources = append(d.resources, res)
	return ResourceID(len(d.resources))
}

// Resource returns the resource registered under id, or nil for an unknown
// id.
func (d *Document) Resource(id ResourceID) *Resource {
	if id < 1 || int(id) > len(d.resources) {
		return nil
	}
	return d.resources[id-1]
}

// ResourceCount returns the number of registered resources.
func (d *Document) ResourceCount() int { return len(d.resources) }

// AddNode registers a node into the output scene graph.
func (d *Document) AddNode(n *Node) {
	d.nodes = append(d.nodes, n)
}

// Nodes returns the registered nodes in registration order.
func (d *Document) Nodes() []*Node { return d.nodes }
