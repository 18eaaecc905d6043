package world

import (
	"github.com/cubeforge/voxphys/game"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// TraceSolid walks the voxels crossed by the segment from start to end and
// returns the first one holding a solid block. The boolean is false if the
// whole segment passes through air.
func (w *World) TraceSolid(start, end mgl32.Vec3) (cube.Pos, bool) {
	for pos := range game.VoxelsBetween(start, end) {
		if w.Block(pos).Solid() {
			return pos, true
		}
	}
	return cube.Pos{}, false
}
