package escn

import "testing"

type testKey struct {
	name   string
	margin float32
}

func TestAddInternalResourceDedup(t *testing.T) {
	doc := NewDocument()

	key := testKey{"cube", 0.04}
	id1 := doc.AddInternalResource(NewResource("BoxShape", "a"), key)
	id2 := doc.AddInternalResource(NewResource("BoxShape", "b"), key)

	if id1 != id2 {
		t.Errorf("equal keys should share an id: got %d and %d", id1, id2)
	}
	if doc.ResourceCount() != 1 {
		t.Errorf("expected 1 resource, got %d", doc.ResourceCount())
	}
	if doc.Resource(id1).Name() != "a" {
		t.Errorf("second add should not replace the resource: got %q", doc.Resource(id1).Name())
	}
}

func TestAddInternalResourceDistinctKeys(t *testing.T) {
	doc := NewDocument()

	id1 := doc.AddInternalResource(NewResource("BoxShape", "a"), testKey{"cube", 0})
	id2 := doc.AddInternalResource(NewResource("BoxShape", "b"), testKey{"cube", 0.04})

	if id1 == id2 {
		t.Error("distinct keys should get distinct ids")
	}
	if id1 != 1 || id2 != 2 {
		t.Errorf("ids should be sequential from 1: got %d, %d", id1, id2)
	}
}

func TestGetInternalResource(t *testing.T) {
	doc := NewDocument()

	if _, ok := doc.GetInternalResource(testKey{"cube", 0}); ok {
		t.Error("lookup on empty document should miss")
	}

	id := doc.AddInternalResource(NewResource("SphereShape", "s"), testKey{"cube", 0})
	got, ok := doc.GetInternalResource(testKey{"cube", 0})
	if !ok || got != id {
		t.Errorf("lookup should hit with id %d, got %d (ok=%v)", id, got, ok)
	}
	if doc.ResourceCount() != 1 {
		t.Error("lookup should not create resources")
	}
}

func TestForceAddInternalResource(t *testing.T) {
	doc := NewDocument()

	id1 := doc.ForceAddInternalResource(NewResource("PhysicsMaterial", "m"))
	id2 := doc.ForceAddInternalResource(NewResource("PhysicsMaterial", "m"))

	if id1 == id2 {
		t.Error("force add must never deduplicate")
	}
	if doc.ResourceCount() != 2 {
		t.Errorf("expected 2 resources, got %d", doc.ResourceCount())
	}
}

func TestResourceUnknownID(t *testing.T) {
	doc := NewDocument()
	if doc.Resource(0) != nil || doc.Resource(1) != nil {
		t.Error("unknown ids should return nil")
	}
}

func TestNodePath(t *testing.T) {
	root := NewNode("Scene", "Spatial", nil)
	child := NewNode("Body", "RigidBody", root)
	grand := NewNode("Collision", "CollisionShape", child)

	if root.Path() != "." {
		t.Errorf("root path: got %q, want %q", root.Path(), ".")
	}
	if child.Path() != "Body" {
		t.Errorf("child path: got %q, want %q", child.Path(), "Body")
	}
	if grand.Path() != "Body/Collision" {
		t.Errorf("grandchild path: got %q, want %q", grand.Path(), "Body/Collision")
	}
}

func TestNodePropertyOrder(t *testing.T) {
	n := NewNode("X", "Spatial", nil)
	n.Set("b", 1)
	n.Set("a", 2)
	n.Set("b", 3) // overwrite keeps position

	if v, _ := n.Get("b"); v != 3 {
		t.Errorf("overwritten property: got %v, want 3", v)
	}
	if len(n.keys) != 2 || n.keys[0] != "b" || n.keys[1] != "a" {
		t.Errorf("property order: got %v, want [b a]", n.keys)
	}
}
