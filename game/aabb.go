package game

import (
	"github.com/ethaniccc/float32-cube/cube"
)

// VoxelBox returns the collision box of a voxel at the given position. The box spans
// the full unit square horizontally and the given height vertically.
func VoxelBox(pos cube.Pos, height float32) cube.BBox {
	min := pos.Vec3()
	return cube.Box(
		min.X(), min.Y(), min.Z(),
		min.X()+1, min.Y()+height, min.Z()+1,
	)
}
