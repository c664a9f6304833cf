package math

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max Vec3
}

// BoxFromPoints computes the bounding box of a set of corner points.
// Returns a zero box for an empty slice.
func BoxFromPoints(points []Vec3) Box3 {
	if len(points) == 0 {
		return Box3{}
	}
	box := Box3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}

// Extents returns the total size of the box along each axis.
func (b Box3) Extents() Vec3 {
	return b.Max.Sub(b.Min)
}
