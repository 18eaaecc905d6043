package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds reusable byte buffers for column payload encoding and decoding.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer([]byte{})
	},
}
