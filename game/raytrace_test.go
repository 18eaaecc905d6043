package game

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func collect(start, end mgl32.Vec3) []cube.Pos {
	var out []cube.Pos
	for pos := range VoxelsBetween(start, end) {
		out = append(out, pos)
	}
	return out
}

func TestVoxelsBetweenStraightLine(t *testing.T) {
	got := collect(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{3.5, 0.5, 0.5})
	want := []cube.Pos{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}

	if len(got) != len(want) {
		t.Fatalf("expected %d voxels, got %d: %v", len(want), len(got), got)
	}
	for i, pos := range want {
		if got[i] != pos {
			t.Fatalf("voxel %d: expected %v, got %v", i, pos, got[i])
		}
	}
}

func TestVoxelsBetweenDescending(t *testing.T) {
	got := collect(mgl32.Vec3{0.5, 2.5, 0.5}, mgl32.Vec3{0.5, 0.2, 0.5})
	want := []cube.Pos{{0, 2, 0}, {0, 1, 0}, {0, 0, 0}}

	if len(got) != len(want) {
		t.Fatalf("expected %d voxels, got %d: %v", len(want), len(got), got)
	}
	for i, pos := range want {
		if got[i] != pos {
			t.Fatalf("voxel %d: expected %v, got %v", i, pos, got[i])
		}
	}
}

func TestVoxelsBetweenZeroLength(t *testing.T) {
	if got := collect(mgl32.Vec3{1.5, 1.5, 1.5}, mgl32.Vec3{1.5, 1.5, 1.5}); got != nil {
		t.Fatalf("expected no voxels for a zero-length segment, got %v", got)
	}
}

func TestVoxelsBetweenDiagonalAdjacency(t *testing.T) {
	start, end := mgl32.Vec3{0.2, 0.2, 0.2}, mgl32.Vec3{1.8, 1.8, 1.8}
	got := collect(start, end)

	if len(got) == 0 {
		t.Fatal("expected at least one voxel")
	}
	if got[0] != cube.PosFromVec3(start) {
		t.Fatalf("expected traversal to start at %v, got %v", cube.PosFromVec3(start), got[0])
	}
	if got[len(got)-1] != cube.PosFromVec3(end) {
		t.Fatalf("expected traversal to end at %v, got %v", cube.PosFromVec3(end), got[len(got)-1])
	}

	// The walk may only ever cross one voxel boundary at a time.
	for i := 1; i < len(got); i++ {
		diff := 0
		for axis := 0; axis < 3; axis++ {
			d := got[i][axis] - got[i-1][axis]
			if d < 0 {
				d = -d
			}
			diff += d
		}
		if diff != 1 {
			t.Fatalf("voxels %v and %v are not adjacent", got[i-1], got[i])
		}
	}
}
