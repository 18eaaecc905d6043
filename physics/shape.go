package physics

import (
	"github.com/cubeforge/voxphys/assert"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind discriminates the closed set of collision shapes a body may carry.
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeCapsule
	ShapeSphere
)

// Shape describes the collision volume of a body as half-extents. A shape is
// immutable once created and may be shared between bodies.
type Shape struct {
	kind        ShapeKind
	halfExtents mgl32.Vec3
}

// NewBox returns a box shape with the given half-extents.
func NewBox(halfExtents mgl32.Vec3) *Shape {
	assert.IsTrue(halfExtents.X() > 0 && halfExtents.Y() > 0 && halfExtents.Z() > 0, "box half-extents must be positive, got %v", halfExtents)
	return &Shape{kind: ShapeBox, halfExtents: halfExtents}
}

// NewCapsule returns a capsule shape with the given horizontal radius and
// half-height. The capsule is swept as its bounding box.
func NewCapsule(radius, halfHeight float32) *Shape {
	assert.IsTrue(radius > 0 && halfHeight >= radius, "capsule requires 0 < radius <= halfHeight, got r=%v h=%v", radius, halfHeight)
	return &Shape{kind: ShapeCapsule, halfExtents: mgl32.Vec3{radius, halfHeight, radius}}
}

// NewSphere returns a sphere shape with the given radius, swept as its
// bounding box.
func NewSphere(radius float32) *Shape {
	assert.IsTrue(radius > 0, "sphere radius must be positive, got %v", radius)
	return &Shape{kind: ShapeSphere, halfExtents: mgl32.Vec3{radius, radius, radius}}
}

// Kind returns the kind of the shape.
func (s *Shape) Kind() ShapeKind {
	return s.kind
}

// HalfExtents returns the half-extents of the volume the shape is swept as.
// The X/Z components are the horizontal radius and the Y component is the
// half-height.
func (s *Shape) HalfExtents() mgl32.Vec3 {
	switch s.kind {
	case ShapeBox, ShapeCapsule, ShapeSphere:
		return s.halfExtents
	default:
		panic("unknown shape kind")
	}
}

// Height returns the full height of the shape.
func (s *Shape) Height() float32 {
	return s.HalfExtents().Y() * 2
}

// BBoxAt returns the bounding box of the shape with its bottom face centered
// on the given feet position. The horizontal faces are pulled in slightly so
// that a body sitting flush against a voxel face does not register as
// intersecting it.
func (s *Shape) BBoxAt(feet mgl32.Vec3) cube.BBox {
	he := s.HalfExtents()
	return cube.Box(
		feet.X()-he.X(), feet.Y(), feet.Z()-he.Z(),
		feet.X()+he.X(), feet.Y()+he.Y()*2, feet.Z()+he.Z(),
	).GrowVec3(mgl32.Vec3{-0.0001, 0, -0.0001})
}
