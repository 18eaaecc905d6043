package world

import (
	"github.com/df-mc/dragonfly/server/world/chunk"
)

// ChunkSource is an interface that returns block information like a regular
// chunk column.
type ChunkSource interface {
	// Block returns the runtime ID of the block at the given column-local
	// position.
	Block(x uint8, y int16, z uint8) (rid uint32)
}

// Column is a chunk column owned by a single world. Unlike cached columns it
// may be written to directly, which makes it the storage of choice for
// hand-built terrain.
type Column struct {
	c *chunk.Chunk
}

// NewColumn returns an empty column spanning the world bounds.
func NewColumn() *Column {
	return &Column{c: chunk.New(AirRuntimeID, StorageRange())}
}

// Block returns the runtime ID of the block at the given column-local
// position.
func (col *Column) Block(x uint8, y int16, z uint8) uint32 {
	return col.c.Block(x, y, z, 0)
}

// SetBlock sets the block at the given column-local position.
func (col *Column) SetBlock(x uint8, y int16, z uint8, b Block) {
	col.c.SetBlock(x, y, z, 0, b.RuntimeID())
}

// Compact compacts the underlying paletted storage of the column.
func (col *Column) Compact() {
	col.c.Compact()
}
