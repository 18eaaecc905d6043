package world

import (
	"bytes"
	"encoding/binary"

	"github.com/cubeforge/voxphys/internal"
	"github.com/cubeforge/voxphys/verror"
	"github.com/df-mc/dragonfly/server/world/chunk"
)

// Column payloads are a run-length encoding of a full 16x16 column: pairs of
// varints (run length, block runtime ID) covering every cell from the bottom
// of the world bounds to the top, y-major with x then z inside. The payload
// is the identity of the terrain: columns with equal payloads share one
// decoded instance through the cache.

// columnCells is the amount of cells a column payload covers.
var columnCells = 16 * 16 * (Bounds.Max() - Bounds.Min() + 1)

// cellAt returns the cell index of the given column-local coordinates.
func cellAt(x, y, z int) int {
	return ((y-Bounds.Min())*16+x)*16 + z
}

// ColumnBuilder accumulates blocks for one chunk column and produces the
// payload they encode to. The zero value is not usable; use NewColumnBuilder.
type ColumnBuilder struct {
	cells []Block
}

// NewColumnBuilder returns a builder for an all-air column.
func NewColumnBuilder() *ColumnBuilder {
	return &ColumnBuilder{cells: make([]Block, columnCells)}
}

// Set sets the block at the given column-local position. Positions outside
// the column are ignored.
func (b *ColumnBuilder) Set(x, y, z int, bl Block) {
	if x < 0 || x > 15 || z < 0 || z > 15 || y < Bounds.Min() || y > Bounds.Max() {
		return
	}
	b.cells[cellAt(x, y, z)] = bl
}

// Fill sets every block of the column-local x/z position between yMin and
// yMax inclusive.
func (b *ColumnBuilder) Fill(x, z, yMin, yMax int, bl Block) {
	for y := yMin; y <= yMax; y++ {
		b.Set(x, y, z, bl)
	}
}

// Payload encodes the accumulated blocks into a column payload.
func (b *ColumnBuilder) Payload() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	var scratch [binary.MaxVarintLen64]byte
	writeVarint := func(v uint64) {
		n := binary.PutUvarint(scratch[:], v)
		buf.Write(scratch[:n])
	}

	run := uint64(0)
	current := b.cells[0]
	for _, cell := range b.cells {
		if cell == current {
			run++
			continue
		}
		writeVarint(run)
		writeVarint(uint64(current.RuntimeID()))
		current, run = cell, 1
	}
	writeVarint(run)
	writeVarint(uint64(current.RuntimeID()))

	payload := make([]byte, buf.Len())
	copy(payload, buf.Bytes())
	return payload
}

// DecodeColumn decodes a column payload into paletted chunk storage. The
// payload must cover exactly every cell of the column; anything short, long
// or with an unknown runtime ID is rejected.
func DecodeColumn(payload []byte) (*chunk.Chunk, error) {
	c := chunk.New(AirRuntimeID, StorageRange())

	cell := 0
	for off := 0; off < len(payload); {
		run, n := binary.Uvarint(payload[off:])
		if n <= 0 {
			return nil, verror.New("malformed run length at offset %d", off)
		}
		off += n
		rid, n := binary.Uvarint(payload[off:])
		if n <= 0 {
			return nil, verror.New("malformed runtime ID at offset %d", off)
		}
		off += n

		b, ok := BlockByRuntimeID(uint32(rid))
		if !ok {
			return nil, verror.New("unknown block runtime ID %d", rid)
		}
		if cell+int(run) > columnCells {
			return nil, verror.New("column payload overflows %d cells", columnCells)
		}

		if b == Air {
			// Fresh storage is air already.
			cell += int(run)
			continue
		}
		for i := 0; i < int(run); i++ {
			y := Bounds.Min() + cell/256
			x := (cell / 16) % 16
			z := cell % 16
			c.SetBlock(uint8(x), int16(y), uint8(z), 0, b.RuntimeID())
			cell++
		}
	}
	if cell != columnCells {
		return nil, verror.New("column payload covers %d of %d cells", cell, columnCells)
	}
	return c, nil
}
