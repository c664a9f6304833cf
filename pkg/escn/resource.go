package escn

// ResourceID identifies an internal resource within one document. IDs are
// sequential, starting at 1, in registration order.
type ResourceID int

// Resource is an internal (sub-)resource of the document, such as a
// collision shape or physics material. Properties keep insertion order.
type Resource struct {
	resType string
	name    string

	keys  []string
	props map[string]any
}

// NewResource creates a resource with the given type tag and name.
func NewResource(resType, name string) *Resource {
	return &Resource{
		resType: resType,
		name:    name,
		props:   make(map[string]any),
	}
}

// Type returns the resource's type tag (e.g. "BoxShape").
func (r *Resource) Type() string { return r.resType }

// Name returns the resource name.
func (r *Resource) Name() string { return r.name }

// Set assigns a named property, preserving first-insertion order.
func (r *Resource) Set(key string, value any) {
	if _, ok := r.props[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.props[key] = value
}

// Get returns a property value and whether it was set.
func (r *Resource) Get(key string) (any, bool) {
	v, ok := r.props[key]
	return v, ok
}

// SubResource is a reference from a node property to an internal resource.
// An invalid reference serializes as null; nodes carry one even when shape
// generation produced nothing.
type SubResource struct {
	ID    ResourceID
	Valid bool
}

// Ref returns a valid reference to the given resource id.
func Ref(id ResourceID) SubResource {
	return SubResource{ID: id, Valid: true}
}

// NullRef returns an empty reference.
func NullRef() SubResource {
	return SubResource{}
}
