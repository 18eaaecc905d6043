package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestShapeBounds(t *testing.T) {
	box := NewBox(mgl32.Vec3{0.3, 0.8, 0.3})
	bb := box.BBoxAt(mgl32.Vec3{2, 1, -3})
	min, max := bb.Min(), bb.Max()

	if min.Y() != 1 || math32.Abs(max.Y()-2.6) > 1e-5 {
		t.Fatalf("vertical extents wrong: %v..%v", min.Y(), max.Y())
	}
	if math32.Abs(min.X()-1.7001) > 1e-5 || math32.Abs(max.X()-2.2999) > 1e-5 {
		t.Fatalf("horizontal extents must be pulled in by the shell inset: %v..%v", min.X(), max.X())
	}
	if math32.Abs(min.Z()+3.2999) > 1e-5 || math32.Abs(max.Z()+2.7001) > 1e-5 {
		t.Fatalf("z extents wrong: %v..%v", min.Z(), max.Z())
	}

	capsule := NewCapsule(0.3, 0.8)
	if capsule.Height() != 1.6 {
		t.Fatalf("capsule height must span twice the half-height, got %v", capsule.Height())
	}
	if capsule.Kind() != ShapeCapsule {
		t.Fatalf("wrong kind %v", capsule.Kind())
	}

	sphere := NewSphere(0.5)
	if he := sphere.HalfExtents(); he != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Fatalf("sphere half-extents wrong: %v", he)
	}
}
