package world

import (
	"testing"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniquePayload builds a column payload no other test produces, so subscriber
// counts on its cache entry are exact.
func uniquePayload(marker int) []byte {
	b := NewColumnBuilder()
	b.Fill(0, 0, 0, 40, Stone)
	b.Set(marker%16, 100+marker/16, 15, Gravel)
	return b.Payload()
}

func TestColumnCacheDedup(t *testing.T) {
	wa := New(testLog())
	wb := New(testLog())
	payload := uniquePayload(1)

	require.NoError(t, insertColumn(wa, ChunkPos{0, 0}, payload))
	require.NoError(t, insertColumn(wb, ChunkPos{5, 5}, payload))

	ca := wa.GetChunk(ChunkPos{0, 0})
	cb := wb.GetChunk(ChunkPos{5, 5})
	require.NotNil(t, ca)

	// Equal payloads decode once and both worlds hold the same instance.
	assert.Same(t, ca, cb)
	cached, ok := ca.(*CachedColumn)
	require.True(t, ok)
	assert.Equal(t, int64(2), cached.subs.Load())
	assert.Greater(t, CachedColumns(), 0)

	wa.PurgeChunks()
	assert.Equal(t, int64(1), cached.subs.Load())
	wb.PurgeChunks()
	assert.Equal(t, int64(0), cached.subs.Load())
}

func TestColumnCacheReplacedColumnUnsubscribes(t *testing.T) {
	w := New(testLog())
	payload := uniquePayload(2)

	require.NoError(t, insertColumn(w, ChunkPos{0, 0}, payload))
	cached := w.GetChunk(ChunkPos{0, 0}).(*CachedColumn)
	require.Equal(t, int64(1), cached.subs.Load())

	// Streaming a new column into the same slot releases the old one.
	w.AddChunk(ChunkPos{0, 0}, NewColumn())
	assert.Equal(t, int64(0), cached.subs.Load())
}

func TestCacheQueuesPayloads(t *testing.T) {
	w := New(testLog())
	payload := uniquePayload(3)

	queued, err := Cache(w, ChunkPos{2, 3}, payload)
	require.NoError(t, err)
	assert.True(t, queued)

	require.Eventually(t, func() bool {
		return w.IsChunkLoaded(2, 3)
	}, 2*time.Second, 5*time.Millisecond)

	// Local (0, 20, 0) of chunk (2, 3) is world position (32, 20, 48).
	assert.Equal(t, Stone, w.Block(cube.Pos{32, 20, 48}))
}

func TestCacheDecodeFailureLoadsEmptyColumn(t *testing.T) {
	w := New(testLog())

	// A corrupt payload still loads a column. The chunk has to count as
	// streamed; otherwise the collision fail-safe would keep it solid forever.
	err := insertColumn(w, ChunkPos{7, 7}, []byte{0xff})
	assert.Error(t, err)
	assert.True(t, w.IsChunkLoaded(7, 7))
	assert.Equal(t, Air, w.Block(cube.Pos{112, 10, 112}))
}
