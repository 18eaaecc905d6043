package world

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
)

// StorageRange returns Bounds as the range type chunk storage expects.
func StorageRange() df_cube.Range {
	return df_cube.Range{Bounds.Min(), Bounds.Max()}
}

// columnLocal returns the column-local coordinates of a block position. The
// horizontal components are masked into [0,15]; masking int values keeps the
// low bits intact for negative coordinates.
func columnLocal(pos cube.Pos) (x uint8, y int16, z uint8) {
	return uint8(pos[0] & 15), int16(pos[1]), uint8(pos[2] & 15)
}
