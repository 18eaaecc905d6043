package physics

import (
	"github.com/cubeforge/voxphys/world"
	"github.com/ethaniccc/float32-cube/cube"
)

// BlockSource is the read-only voxel oracle the collision resolver sweeps
// against. The source must be stable for the duration of a MoveBody call.
type BlockSource interface {
	// IsChunkLoaded returns true if the chunk column at the given chunk
	// coordinates is loaded. Voxels in unloaded columns are treated as solid
	// by the resolver.
	IsChunkLoaded(chunkX, chunkZ int32) bool
	// Block returns the block at the given position. Out-of-range positions
	// return air.
	Block(pos cube.Pos) world.Block
	// Range returns the vertical range voxels may occupy. Sweeps clamp their
	// vertical iteration to it.
	Range() cube.Range
}
