package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
)

// sweepContext carries the scratch state of one MoveBody call. Contexts are
// pooled; a sweep obtains one on entry and returns it when resolution is done.
type sweepContext struct {
	body *Body

	// boxes is the reused candidate buffer of the current axis sweep.
	boxes []cube.BBox
}
