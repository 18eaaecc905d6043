package world

import (
	"sync"

	"github.com/cubeforge/voxphys/worker"
	"github.com/sirupsen/logrus"
)

// Generator produces the column payloads terrain is populated from.
// Generators must be safe for concurrent use; Populate builds columns on the
// worker pool.
type Generator interface {
	// Column returns the payload of the chunk column at the given position.
	Column(pos ChunkPos) []byte
}

// FlatGenerator produces flat terrain: a grass surface over dirt over stone,
// air above.
type FlatGenerator struct {
	// Surface is the Y level of the grass surface block.
	Surface int
}

// Column returns the payload of a flat column.
func (g FlatGenerator) Column(ChunkPos) []byte {
	b := NewColumnBuilder()
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			b.Fill(x, z, Bounds.Min(), g.Surface-3, Stone)
			b.Fill(x, z, g.Surface-2, g.Surface-1, Dirt)
			b.Set(x, g.Surface, z, Grass)
		}
	}
	return b.Payload()
}

// TerraceGenerator produces terrain that rises by one block every Run blocks
// along +X, with a slab on the column in front of each riser. The slab splits
// the full-block climb into two half-steps, so a body walking the terraces
// upward takes them with the step assist rather than jumps.
type TerraceGenerator struct {
	// Floor is the surface height of the lowest terrace, used for every x <= 0.
	Floor int
	// Run is the amount of blocks between risers. Values below 2 collapse the
	// terraces into a slope steeper than a body can climb per step.
	Run int32
}

// Column returns the payload of a terraced column.
func (g TerraceGenerator) Column(pos ChunkPos) []byte {
	run := int(g.Run)
	if run < 1 {
		run = 1
	}

	b := NewColumnBuilder()
	for lx := 0; lx < 16; lx++ {
		wx := int(pos.X())*16 + lx
		level := g.Floor
		if wx > 0 {
			level += wx / run
		}
		for z := 0; z < 16; z++ {
			b.Fill(lx, z, Bounds.Min(), level-1, Stone)
			b.Set(lx, level, z, Grass)
			if wx >= 0 && (wx+1)%run == 0 {
				b.Set(lx, level+1, z, Slab)
			}
		}
	}
	return b.Payload()
}

// Populate fills every column within the given chunk radius around center
// through the deduplicating cache and blocks until all of them are loaded.
// Column payloads are built and decoded on the worker pool.
func Populate(w *World, g Generator, center ChunkPos, radius int32) {
	var wg sync.WaitGroup
	for x := center.X() - radius; x <= center.X()+radius; x++ {
		for z := center.Z() - radius; z <= center.Z()+radius; z++ {
			pos := ChunkPos{x, z}
			wg.Add(1)
			worker.Submit(func() {
				defer wg.Done()
				if err := insertColumn(w, pos, g.Column(pos)); err != nil {
					logrus.Warnf("failed populating column at %v: %v", pos, err)
				}
			})
		}
	}
	wg.Wait()
}
