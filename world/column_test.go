package world

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnPayloadRoundTrip(t *testing.T) {
	b := NewColumnBuilder()
	b.Fill(0, 0, 0, 63, Stone)
	b.Set(0, 64, 0, Grass)
	b.Set(15, 64, 15, Slab)
	b.Set(7, 200, 9, Plank)

	c, err := DecodeColumn(b.Payload())
	require.NoError(t, err)
	col := &Column{c: c}

	assert.Equal(t, Stone.RuntimeID(), col.Block(0, 32, 0))
	assert.Equal(t, Grass.RuntimeID(), col.Block(0, 64, 0))
	assert.Equal(t, Slab.RuntimeID(), col.Block(15, 64, 15))
	assert.Equal(t, Plank.RuntimeID(), col.Block(7, 200, 9))
	assert.Equal(t, AirRuntimeID, col.Block(8, 65, 8))
	assert.Equal(t, AirRuntimeID, col.Block(0, 64, 1))
}

// rawPayload encodes run/runtime ID pairs without the builder, for feeding the
// decoder malformed input.
func rawPayload(pairs ...uint64) []byte {
	buf := new(bytes.Buffer)
	var scratch [binary.MaxVarintLen64]byte
	for _, v := range pairs {
		n := binary.PutUvarint(scratch[:], v)
		buf.Write(scratch[:n])
	}
	return buf.Bytes()
}

func TestDecodeColumnRejectsMalformed(t *testing.T) {
	good := NewColumnBuilder().Payload()
	_, err := DecodeColumn(good)
	require.NoError(t, err)

	cases := []struct {
		name    string
		payload []byte
	}{
		{"empty", nil},
		{"truncated varint", []byte{0xff}},
		{"missing runtime ID", rawPayload(uint64(columnCells))},
		{"unknown runtime ID", rawPayload(uint64(columnCells), 9999)},
		{"short coverage", rawPayload(16, uint64(Stone.RuntimeID()))},
		{"overflowing run", rawPayload(uint64(columnCells+1), uint64(Stone.RuntimeID()))},
	}
	for _, c := range cases {
		if _, err := DecodeColumn(c.payload); err == nil {
			t.Fatalf("%s: expected the decoder to reject the payload", c.name)
		}
	}
}

func TestPayloadIdentity(t *testing.T) {
	build := func() []byte {
		b := NewColumnBuilder()
		b.Fill(4, 4, 0, 80, Dirt)
		b.Set(4, 81, 4, Grass)
		return b.Payload()
	}
	// Identical terrain encodes identically; the payload is the cache key.
	assert.Equal(t, build(), build())

	other := NewColumnBuilder()
	other.Fill(4, 4, 0, 80, Dirt)
	other.Set(4, 81, 5, Grass)
	assert.NotEqual(t, build(), other.Payload())
}
