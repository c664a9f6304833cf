// Package escn builds Godot scene documents: a tree of typed nodes plus a
// table of internal resources, serializable to the textual .escn format.
package escn

// Node is a single node in the exported scene tree. Properties keep their
// insertion order so the serialized output is deterministic.
type Node struct {
	name     string
	nodeType string
	parent   *Node

	keys  []string
	props map[string]any
}

// NewNode creates a node with the given name and type tag under parent.
// A nil parent marks the scene root.
func NewNode(name, nodeType string, parent *Node) *Node {
	return &Node{
		name:     name,
		nodeType: nodeType,
		parent:   parent,
		props:    make(map[string]any),
	}
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Type returns the node's type tag (e.g. "RigidBody", "CollisionShape").
func (n *Node) Type() string { return n.nodeType }

// Parent returns the parent node, or nil for the scene root.
func (n *Node) Parent() *Node { return n.parent }

// Set assigns a named property. Setting an existing key overwrites the value
// but keeps its original position.
func (n *Node) Set(key string, value any) {
	if _, ok := n.props[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.props[key] = value
}

// Get returns a property value and whether it was set.
func (n *Node) Get(key string) (any, bool) {
	v, ok := n.props[key]
	return v, ok
}

// Path returns the node's path as referenced from the scene root: "." for
// the root itself, otherwise the slash-joined chain of names below the root.
func (n *Node) Path() string {
	if n.parent == nil {
		return "."
	}
	if n.parent.parent == nil {
		return n.name
	}
	return n.parent.Path() + "/" + n.name
}
