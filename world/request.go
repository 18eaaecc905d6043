package world

// addColumnRequest asks the cache workers to decode a column payload and hand
// the resulting column to a world.
type addColumnRequest struct {
	payload []byte
	pos     ChunkPos
	target  *World
}
