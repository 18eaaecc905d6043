package world

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cubeforge/voxphys/verror"
	"github.com/df-mc/dragonfly/server/world/chunk"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

var (
	columnCache = make(map[xxh3.Uint128]*CachedColumn)
	columnQueue = make(chan addColumnRequest, 65536)
	cMu         sync.RWMutex
)

func init() {
	for i := 0; i < runtime.NumCPU()*2; i++ {
		go cacheWorker()
	}
	go clearCacheWorker()
}

// Cache hands the column payload to the cache workers to be decoded and added
// to the world. When the queue is saturated the payload is decoded
// synchronously on the calling goroutine instead, so the caller always makes
// progress. The first return value reports wether or not the payload was
// queued.
func Cache(w *World, pos ChunkPos, payload []byte) (bool, error) {
	select {
	case columnQueue <- addColumnRequest{payload: payload, pos: pos, target: w}:
		return true, nil
	default:
		// The queue is already filled up (wow) which means the workers are a
		// bit behind. We can still process the column manually and insert it
		// into the world.
		return false, insertColumn(w, pos, payload)
	}
}

// CachedColumn is a decoded chunk column shared between every world whose
// terrain produced the same payload. Subscriber counts track how many worlds
// currently hold it; unsubscribed columns are evicted by the cache sweep.
type CachedColumn struct {
	subs atomic.Int64
	c    *chunk.Chunk
}

// Subscribe registers a world as holding the column.
func (cc *CachedColumn) Subscribe() {
	cc.subs.Add(1)
}

// Unsubscribe removes a previously registered world from the column.
func (cc *CachedColumn) Unsubscribe() {
	cc.subs.Add(-1)
}

// Block returns the runtime ID of the block at the given column-local
// position.
func (cc *CachedColumn) Block(x uint8, y int16, z uint8) (rid uint32) {
	return cc.c.Block(x, y, z, 0)
}

// CachedColumns returns the amount of distinct columns currently held by the
// cache.
func CachedColumns() int {
	cMu.RLock()
	defer cMu.RUnlock()

	return len(columnCache)
}

// insertColumn decodes the payload through the dedup cache and adds the
// resulting column to the world. A payload that fails to decode still yields
// an empty column so the chunk counts as loaded; the error is returned for
// diagnostics.
func insertColumn(w *World, pos ChunkPos, payload []byte) error {
	// First, get the 128-bit hash of the column payload.
	key := xxh3.Hash128(payload)

	// We can't just do a read-lock on the cache mutex because there could be a
	// race condition where the column is not found and then in another worker,
	// a column with the same hash is cached.
	cMu.Lock()
	cached, found := columnCache[key]
	var err error
	if !found {
		var c *chunk.Chunk
		c, err = DecodeColumn(payload)
		if err != nil {
			c = chunk.New(AirRuntimeID, StorageRange())
		}
		c.Compact()

		cached = &CachedColumn{c: c}
		columnCache[key] = cached
	}
	// Subscribe to the cached column and add it into the world.
	cached.Subscribe()
	w.AddChunk(pos, cached)
	cMu.Unlock()
	return err
}

func cacheWorker() {
	defer func() {
		hub := sentry.CurrentHub().Clone()
		if err := recover(); err != nil {
			hub.Recover(verror.New("cacheWorker crashed: %v", err))
			hub.Flush(time.Second * 5)
		}
	}()

	for req := range columnQueue {
		if err := insertColumn(req.target, req.pos, req.payload); err != nil {
			logrus.Warnf("failed decoding column at %v: %v", req.pos, err)
		}
	}

	logrus.Warnf("cache worker shutdown")
}

func clearCacheWorker() {
	t := time.NewTicker(time.Second)
	defer t.Stop()

	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(err)
			hub.Flush(time.Second * 5)
		}
	}()

	for range t.C {
		cMu.Lock()
		for key, cached := range columnCache {
			if cached.subs.Load() <= 0 {
				delete(columnCache, key)
			}
		}
		cMu.Unlock()
	}
}
