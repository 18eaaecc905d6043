package world

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/sasha-s/go-deadlock"
)

// ChunkPos is the position of a chunk column: the block X and Z coordinates
// shifted down by four.
type ChunkPos [2]int32

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 {
	return p[0]
}

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 {
	return p[1]
}

// ChunkPosFromBlock returns the position of the chunk column that holds the
// given block position.
func ChunkPosFromBlock(pos cube.Pos) ChunkPos {
	return ChunkPos{int32(pos[0] >> 4), int32(pos[2] >> 4)}
}

var currentWorldId uint64

// World is a sparse registry of chunk columns with a block-update overlay on
// top. Columns handed to it may be shared with other worlds through the
// column cache; those are never written to, block edits land in the overlay
// instead. It satisfies the voxel source interface the collision resolver
// sweeps against.
type World struct {
	id           uint64
	lastCleanPos ChunkPos

	chunks         map[ChunkPos]ChunkSource
	exemptedChunks map[ChunkPos]struct{}
	blockUpdates   map[ChunkPos]map[cube.Pos]Block

	log *slog.Logger

	deadlock.RWMutex
}

// New returns an empty world logging through the given logger.
func New(log *slog.Logger) *World {
	currentWorldId++
	return &World{
		chunks:         make(map[ChunkPos]ChunkSource),
		exemptedChunks: make(map[ChunkPos]struct{}),
		blockUpdates:   make(map[ChunkPos]map[cube.Pos]Block),
		id:             currentWorldId,
		log:            log,
	}
}

// ID returns the unique ID of the world.
func (w *World) ID() uint64 {
	return w.id
}

// Range returns the vertical range voxels of the world may occupy.
func (w *World) Range() cube.Range {
	return Bounds
}

// AddChunk adds a chunk column to the world. A column added directly is
// exempted from the next CleanChunks pass until it has been inside the clean
// radius once, so freshly streamed terrain is not evicted before the body
// reaches it.
func (w *World) AddChunk(chunkPos ChunkPos, c ChunkSource) {
	w.Lock()
	defer w.Unlock()

	if old, ok := w.chunks[chunkPos]; ok {
		if cached, ok := old.(*CachedColumn); ok {
			cached.Unsubscribe()
		}
		delete(w.blockUpdates, chunkPos)
	}
	w.chunks[chunkPos] = c
	w.exemptedChunks[chunkPos] = struct{}{}
}

// GetChunk returns the chunk column at the position passed, or nil if none is
// loaded there.
func (w *World) GetChunk(pos ChunkPos) ChunkSource {
	w.RLock()
	c := w.chunks[pos]
	w.RUnlock()

	return c
}

// IsChunkLoaded returns true if the chunk column at the given chunk
// coordinates is loaded.
func (w *World) IsChunkLoaded(chunkX, chunkZ int32) bool {
	w.RLock()
	_, ok := w.chunks[ChunkPos{chunkX, chunkZ}]
	w.RUnlock()

	return ok
}

// Block returns the block at the position passed. Positions outside the world
// bounds and positions in unloaded columns return air.
func (w *World) Block(pos cube.Pos) Block {
	if pos.OutOfBounds(Bounds) {
		return Air
	}

	chunkPos := ChunkPosFromBlock(pos)
	w.RLock()
	blockUpdates, found := w.blockUpdates[chunkPos]
	w.RUnlock()
	if found {
		if b, ok := blockUpdates[pos]; ok {
			return b
		}
	}

	c := w.GetChunk(chunkPos)
	if c == nil {
		return Air
	}

	x, y, z := columnLocal(pos)
	rid := c.Block(x, y, z)
	if b, ok := BlockByRuntimeID(rid); ok {
		return b
	}
	return Air
}

// SetBlock sets the block at the position passed. The edit lands in the
// overlay of the column: shared columns are immutable and a column swap drops
// the overlay along with the stale terrain.
func (w *World) SetBlock(pos cube.Pos, b Block) {
	if pos.OutOfBounds(Bounds) {
		return
	}
	chunkPos := ChunkPosFromBlock(pos)

	w.Lock()
	defer w.Unlock()

	if w.blockUpdates[chunkPos] == nil {
		w.blockUpdates[chunkPos] = make(map[cube.Pos]Block)
	}
	w.blockUpdates[chunkPos][pos] = b
}

// CleanChunks cleans up the chunk columns in respect to the given chunk radius
// and chunk position.
func (w *World) CleanChunks(radius int32, pos ChunkPos) {
	w.Lock()
	defer w.Unlock()

	if pos == w.lastCleanPos {
		return
	}
	w.lastCleanPos = pos

	for chunkPos, c := range w.chunks {
		_, exempted := w.exemptedChunks[chunkPos]
		inRange := chunkInRange(radius, chunkPos, pos)

		if exempted && inRange {
			delete(w.exemptedChunks, chunkPos)
		} else if !exempted && !inRange {
			if cached, ok := c.(*CachedColumn); ok {
				cached.Unsubscribe()
			}
			delete(w.chunks, chunkPos)
			delete(w.blockUpdates, chunkPos)
			w.log.Debug("evicted chunk column", "world", w.id, "chunkPos", chunkPos, "radius", radius, "pos", pos)
		}
	}
}

// PurgeChunks removes all chunk columns from the world, along with every
// pending block update and exemption.
func (w *World) PurgeChunks() {
	w.Lock()
	defer w.Unlock()

	for chunkPos, c := range w.chunks {
		if cached, ok := c.(*CachedColumn); ok {
			cached.Unsubscribe()
		}
		delete(w.chunks, chunkPos)
	}
	clear(w.blockUpdates)
	clear(w.exemptedChunks)
}

// ChunkCount returns the amount of chunk columns currently loaded.
func (w *World) ChunkCount() int {
	w.RLock()
	defer w.RUnlock()

	return len(w.chunks)
}

// chunkInRange returns true if the chunk position is within the given radius
// of the chunk position.
func chunkInRange(radius int32, chunkPos, pos ChunkPos) bool {
	diffX, diffZ := pos[0]-chunkPos[0], pos[1]-chunkPos[1]
	dist := math32.Sqrt(float32(diffX*diffX) + float32(diffZ*diffZ))

	return int32(dist) <= radius
}
