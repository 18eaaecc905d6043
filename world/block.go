package world

// Block is the type of a voxel. Every variant except Air takes part in
// collision.
type Block uint32

const (
	Air Block = iota
	Stone
	Dirt
	Grass
	Sand
	Gravel
	Plank
	Slab

	blockCount
)

// AirRuntimeID is the runtime ID stored for empty voxels in chunk storage.
const AirRuntimeID = uint32(Air)

// Solid returns wether or not the block takes part in collision.
func (b Block) Solid() bool {
	return b != Air
}

// Height returns the height of the block's collision box. Full blocks span the
// whole voxel; slabs span the lower half.
func (b Block) Height() float32 {
	switch b {
	case Air:
		return 0
	case Slab:
		return 0.5
	default:
		return 1
	}
}

// RuntimeID returns the runtime ID the block is stored as in chunk storage.
func (b Block) RuntimeID() uint32 {
	return uint32(b)
}

// BlockByRuntimeID returns the block stored under the given runtime ID.
func BlockByRuntimeID(rid uint32) (Block, bool) {
	if rid >= uint32(blockCount) {
		return Air, false
	}
	return Block(rid), true
}

// String returns the name of the block.
func (b Block) String() string {
	switch b {
	case Air:
		return "air"
	case Stone:
		return "stone"
	case Dirt:
		return "dirt"
	case Grass:
		return "grass"
	case Sand:
		return "sand"
	case Gravel:
		return "gravel"
	case Plank:
		return "plank"
	case Slab:
		return "slab"
	}
	return "unknown"
}
