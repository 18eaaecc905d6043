package world

import (
	"github.com/ethaniccc/float32-cube/cube"
)

// Bounds is the vertical range voxels may occupy. Collision sweeps clamp
// their vertical iteration to it and column storage spans exactly this range.
var Bounds = cube.Range{0, 255}
