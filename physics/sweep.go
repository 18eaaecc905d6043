package physics

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/cubeforge/voxphys/debug"
	"github.com/cubeforge/voxphys/game"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

// Collider resolves the displacement of bodies against a read-only voxel
// source. It holds no block data itself: every sweep queries the source for
// the handful of voxels the moving volume can actually reach.
type Collider struct {
	src BlockSource
	dbg *debug.Recorder
	log *slog.Logger
}

// NewCollider returns a collider sweeping against the given source.
func NewCollider(src BlockSource, dbg *debug.Recorder, log *slog.Logger) *Collider {
	return &Collider{src: src, dbg: dbg, log: log}
}

// SetSource swaps the voxel source the collider sweeps against.
func (c *Collider) SetSource(src BlockSource) {
	c.src = src
}

// Source returns the voxel source the collider sweeps against.
func (c *Collider) Source() BlockSource {
	return c.src
}

// MoveBody resolves the displacement the body's velocity desires over dt
// against the voxel field and returns the resulting feet position. The
// grounded state, the per-axis collision flags and the stepped-up flag of the
// body are updated as a side effect; the caller applies the returned position.
// A body without a shape is not moved.
func (c *Collider) MoveBody(b *Body, dt float32) mgl32.Vec3 {
	if b.shape == nil {
		return b.pos
	}

	ctx := newCtx(b)
	defer putCtx(ctx)

	desired := b.vel.Mul(dt)
	bb := b.BBox()
	wasGrounded := b.onGround
	b.resetStepFlags()

	c.dbg.Notify(debug.ModeSweep, true, "BEGIN sweep id=%d pos=%v desired=%v", b.id, b.pos, desired)

	// Vertical resolution runs first so that ground contact is settled before
	// the horizontal axes slide along the already-settled height.
	yMoved, yHit := c.resolveAxis(ctx, &bb, axisY, desired.Y())
	baseBB := bb
	xMoved, xHit := c.resolveAxis(ctx, &bb, axisX, desired.X())
	zMoved, zHit := c.resolveAxis(ctx, &bb, axisZ, desired.Z())

	c.dbg.Notify(debug.ModeSweep, true, "axis sweep: y=%.5f (hit=%v) x=%.5f (hit=%v) z=%.5f (hit=%v)", yMoved, yHit, xMoved, xHit, zMoved, zHit)

	var (
		liftDelta float32
		settleHit bool
	)
	hzIntent := math32.Abs(desired.X()) >= VelocityEpsilon || math32.Abs(desired.Z()) >= VelocityEpsilon
	if wasGrounded && (xHit || zHit) && hzIntent {
		desiredDistSqr := game.Vec3HzDistSqr(desired)
		baseDistSqr := xMoved*xMoved + zMoved*zMoved

		for _, lift := range StepHeights {
			sb := baseBB
			upMoved, _ := c.resolveAxis(ctx, &sb, axisY, lift)
			sx, sxHit := c.resolveAxis(ctx, &sb, axisX, desired.X())
			sz, szHit := c.resolveAxis(ctx, &sb, axisZ, desired.Z())
			downMoved, downHit := c.resolveAxis(ctx, &sb, axisY, -upMoved)

			stepDistSqr := sx*sx + sz*sz
			c.dbg.Notify(debug.ModeStepUp, true, "step-up try lift=%.2f: hz=(%.5f, %.5f) up=%.5f down=%.5f", lift, sx, sz, upMoved, downMoved)

			if stepDistSqr >= StepAcceptance*StepAcceptance*desiredDistSqr && stepDistSqr > baseDistSqr {
				bb = sb
				xMoved, zMoved = sx, sz
				xHit, zHit = sxHit, szHit
				liftDelta = upMoved + downMoved
				settleHit = downHit
				b.steppedUp = true
				c.dbg.Notify(debug.ModeStepUp, true, "step-up accepted lift=%.2f rise=%.5f", lift, liftDelta)
				break
			}
		}
	}

	b.collideX = xHit
	b.collideY = yHit
	b.collideZ = zHit
	b.onGround = (yHit && desired.Y() < 0) || settleHit ||
		(wasGrounded && !yHit && math32.Abs(desired.Y()) <= GroundSnapEpsilon)

	min, max := bb.Min(), bb.Max()
	newPos := mgl32.Vec3{
		(min.X() + max.X()) * 0.5,
		min.Y(),
		(min.Z() + max.Z()) * 0.5,
	}
	c.dbg.Notify(debug.ModeSweep, true, "END sweep id=%d pos=%v ground=%v stepped=%v", b.id, newPos, b.onGround, b.steppedUp)
	return newPos
}

// resolveAxis resolves the displacement d along a single axis, translating the
// box by the movement that survived collision. It reports the moved distance
// and wether or not the axis was blocked. Each pass sweeps at most one voxel
// unit so the time of impact is always found against a small candidate volume;
// displacement left over once the pass cap is reached is dropped and surfaced
// as a diagnostic.
func (c *Collider) resolveAxis(ctx *sweepContext, bb *cube.BBox, axis int, d float32) (float32, bool) {
	if math32.Abs(d) < VelocityEpsilon {
		return 0, false
	}

	var (
		total     float32
		hit       bool
		remaining = d
		passes    int
	)
	for ; passes < MaxAxisPasses; passes++ {
		if math32.Abs(remaining) < VelocityEpsilon {
			remaining = 0
			break
		}
		step := game.ClampFloat(remaining, -MaxPassDistance, MaxPassDistance)
		moved, blocked := c.sweepOnce(ctx, *bb, axis, step)
		if moved != 0 {
			*bb = bb.Translate(axisDelta(axis, moved))
			total += moved
			remaining -= moved
		}
		if blocked {
			hit = true
			remaining = 0
			break
		}
	}

	// The cap only binds on pathological displacements, e.g. a velocity spike
	// covering more voxels in one step than the passes allow. The axis is not
	// marked blocked: nothing stood in the way, the leftover is simply not
	// travelled this step.
	if math32.Abs(remaining) >= VelocityEpsilon {
		extra := orderedmap.NewOrderedMap[string, any]()
		extra.Set("axis", axisName(axis))
		extra.Set("dropped", remaining)
		extra.Set("passes", passes)
		c.dbg.Record(debug.ModeSweep, "axis resolution pass cap exceeded", extra)
	}
	return total, hit
}

// sweepOnce performs one swept pass of the box along the axis, returning the
// displacement that survived the earliest contact and wether or not a contact
// clipped it.
func (c *Collider) sweepOnce(ctx *sweepContext, bb cube.BBox, axis int, d float32) (float32, bool) {
	boxes := c.gatherCandidates(ctx, sweptBox(bb, axis, d))

	minTOI := float32(1)
	found := false
	for _, other := range boxes {
		toi, ok := axisTOI(bb, other, axis, d)
		if !ok {
			continue
		}
		if toi < minTOI {
			minTOI = toi
		}
		found = true
	}
	if !found {
		return d, false
	}

	moved := d * minTOI
	// The skin margin keeps the resolved face off the voxel boundary, but a
	// zero-time contact must not be pushed back through it: correcting an
	// already-resting contact every frame bleeds velocity.
	if minTOI > SkinThreshold {
		if d > 0 {
			moved = math32.Max(moved-SkinWidth, 0)
		} else {
			moved = math32.Min(moved+SkinWidth, 0)
		}
	}
	return moved, true
}

// gatherCandidates collects the collision boxes of every voxel the swept
// volume can reach. Voxels in unloaded chunks contribute full solid cubes so
// that a body never falls through unstreamed terrain. The vertical iteration
// is clamped to the world's range and the candidate count is capped.
func (c *Collider) gatherCandidates(ctx *sweepContext, swept cube.BBox) []cube.BBox {
	ctx.boxes = ctx.boxes[:0]
	r := c.src.Range()

	min, max := swept.Min(), swept.Max()
	minX, maxX := int(math32.Floor(min.X())), int(math32.Ceil(max.X()))
	minY, maxY := int(math32.Floor(min.Y())), int(math32.Ceil(max.Y()))
	minZ, maxZ := int(math32.Floor(min.Z())), int(math32.Ceil(max.Z()))
	if minY < r.Min() {
		minY = r.Min()
	}
	if maxY > r.Max() {
		maxY = r.Max()
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				if len(ctx.boxes) >= MaxSearchBlocks {
					c.dbg.Notify(debug.ModeSweep, true, "candidate cap of %d blocks reached, truncating search", MaxSearchBlocks)
					return ctx.boxes
				}
				pos := cube.Pos{x, y, z}
				if !c.src.IsChunkLoaded(int32(x>>4), int32(z>>4)) {
					ctx.boxes = append(ctx.boxes, game.VoxelBox(pos, 1))
					continue
				}
				bl := c.src.Block(pos)
				if !bl.Solid() {
					continue
				}
				ctx.boxes = append(ctx.boxes, game.VoxelBox(pos, bl.Height()))
			}
		}
	}
	return ctx.boxes
}

// axisTOI returns the time of impact in [0,1) at which the moving box first
// contacts the other box along the axis, given the signed displacement d. A
// box already touching or overlapping towards the direction of travel yields a
// time of exactly 0: immediate contact, never "no collision". The second
// return is false when no contact happens within the displacement.
func axisTOI(bb, other cube.BBox, axis int, d float32) (float32, bool) {
	if !perpOverlap(bb, other, axis) {
		return 1, false
	}
	if d > 0 {
		if other.Min()[axis] < bb.Min()[axis] {
			return 1, false
		}
		dist := other.Min()[axis] - bb.Max()[axis]
		if dist >= d {
			return 1, false
		}
		if dist <= 0 {
			return 0, true
		}
		return dist / d, true
	}
	if other.Max()[axis] > bb.Max()[axis] {
		return 1, false
	}
	dist := other.Max()[axis] - bb.Min()[axis]
	if dist <= d {
		return 1, false
	}
	if dist >= 0 {
		return 0, true
	}
	return dist / d, true
}

// perpOverlap reports wether or not two boxes strictly overlap on both axes
// perpendicular to the given one. Contact on an axis is only possible where
// the perpendicular extents already intersect; faces merely touching slide
// past each other.
func perpOverlap(a, b cube.BBox, axis int) bool {
	for ax := 0; ax < 3; ax++ {
		if ax == axis {
			continue
		}
		if a.Max()[ax] <= b.Min()[ax] || a.Min()[ax] >= b.Max()[ax] {
			return false
		}
	}
	return true
}

// sweptBox extends the box by the signed displacement along one axis only.
func sweptBox(bb cube.BBox, axis int, d float32) cube.BBox {
	min, max := bb.Min(), bb.Max()
	if d > 0 {
		max[axis] += d
	} else {
		min[axis] += d
	}
	return cube.Box(min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())
}

func axisDelta(axis int, d float32) mgl32.Vec3 {
	v := mgl32.Vec3{}
	v[axis] = d
	return v
}

func axisName(axis int) string {
	switch axis {
	case axisX:
		return "x"
	case axisY:
		return "y"
	case axisZ:
		return "z"
	}
	return "?"
}
