package object

import "transform-viewer/internal/transform"

// Object is a visual object in the scene: the primary test cube or a loaded asset root.
// The frame updater mutates Rotation and Scale every tick; the renderer reads Matrix.
// Handle carries renderer-owned data (e.g. a GPU model) and is opaque to this package.
type Object struct {
	Name     string
	Position transform.Vec3
	Rotation transform.Vec3 // Euler angles, radians, XYZ order; accumulates without wraparound
	Scale    transform.Vec3
	Handle   any
}

// New returns an object at the origin with unit scale.
func New(name string, handle any) *Object {
	return &Object{Name: name, Scale: transform.Uniform(1), Handle: handle}
}

// Rotate adds dx and dy to the X and Y rotation.
func (o *Object) Rotate(dx, dy float64) {
	o.Rotation.X += dx
	o.Rotation.Y += dy
}

// SetUniformScale sets all three scale axes to s.
func (o *Object) SetUniformScale(s float64) {
	o.Scale = transform.Uniform(s)
}

// Matrix is the object's world transform.
func (o *Object) Matrix() transform.Mat4 {
	return transform.ComposeEuler(o.Position, o.Rotation, o.Scale)
}

// Set is the ordered collection of objects under per-tick management.
// Insertion order is preserved; the same asset may appear more than once.
type Set struct {
	objects []*Object
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{}
}

// Add appends o.
func (s *Set) Add(o *Object) {
	s.objects = append(s.objects, o)
}

// Len returns the number of managed objects.
func (s *Set) Len() int {
	return len(s.objects)
}

// Each calls fn for every object in insertion order.
func (s *Set) Each(fn func(*Object)) {
	for _, o := range s.objects {
		fn(o)
	}
}

// Objects returns a copy of the object list.
func (s *Set) Objects() []*Object {
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Clear removes all objects and returns them, so the caller can release their handles.
func (s *Set) Clear() []*Object {
	out := s.objects
	s.objects = nil
	return out
}
