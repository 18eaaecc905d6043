package physics

import (
	"log/slog"
	"sync"

	"github.com/cubeforge/voxphys/assert"
	"github.com/cubeforge/voxphys/debug"
	"github.com/cubeforge/voxphys/game"
	"github.com/go-gl/mathgl/mgl32"
)

// World owns the bodies it simulates, the global gravity vector and the
// fixed-step integration loop. Position updates are delegated to the collider.
// A World is single-threaded: Step must never be called concurrently for the
// same instance, and the voxel source must be stable while a step runs.
type World struct {
	log *slog.Logger
	dbg *debug.Recorder

	collider *Collider

	// bodies is an arena addressed by stable BodyIDs; removal leaves a hole
	// that the free list hands out again.
	bodies  []*Body
	freeIDs []BodyID

	gravity mgl32.Vec3
	clock   float32

	// jumpVelocity and jumpRamp parametrize the jumps the world starts on its
	// own, i.e. the auto-jump of blocked bodies.
	jumpVelocity float32
	jumpRamp     float32

	freeFallOnce sync.Once
}

// NewWorld returns a world with default gravity and no voxel source. Stepping
// before SetSource integrates bodies in free fall.
func NewWorld(log *slog.Logger) *World {
	dbg := debug.NewRecorder(log)
	return &World{
		log:          log,
		dbg:          dbg,
		collider:     NewCollider(nil, dbg, log),
		gravity:      mgl32.Vec3{0, game.DefaultGravityY, 0},
		jumpVelocity: game.DefaultJumpVelocity,
		jumpRamp:     game.DefaultJumpRamp,
	}
}

// Dbg returns the diagnostics recorder of the world.
func (w *World) Dbg() *debug.Recorder {
	return w.dbg
}

// Collider returns the collision resolver of the world.
func (w *World) Collider() *Collider {
	return w.collider
}

// SetSource sets the voxel source bodies collide against. It must be called
// before the first step that expects collision.
func (w *World) SetSource(src BlockSource) {
	w.collider.SetSource(src)
}

// Gravity returns the gravity vector applied to gravity-affected bodies.
func (w *World) Gravity() mgl32.Vec3 {
	return w.gravity
}

// SetGravity sets the gravity vector applied to gravity-affected bodies.
func (w *World) SetGravity(gravity mgl32.Vec3) {
	w.gravity = gravity
}

// Clock returns the accumulated simulation time in seconds.
func (w *World) Clock() float32 {
	return w.clock
}

// JumpParams returns the target velocity and ramp duration of world-initiated
// jumps.
func (w *World) JumpParams() (velocity, ramp float32) {
	return w.jumpVelocity, w.jumpRamp
}

// SetJumpParams sets the target velocity and ramp duration of world-initiated
// jumps.
func (w *World) SetJumpParams(velocity, ramp float32) {
	w.jumpVelocity = velocity
	w.jumpRamp = ramp
}

// CreateBody adds a new dynamic, gravity-affected body with the given shape to
// the world and returns it. The shape may be nil; such a body is integrated
// but never collided.
func (w *World) CreateBody(shape *Shape) *Body {
	b := &Body{w: w, shape: shape, gravityAffected: true}
	if n := len(w.freeIDs); n > 0 {
		b.id = w.freeIDs[n-1]
		w.freeIDs = w.freeIDs[:n-1]
		w.bodies[b.id] = b
	} else {
		b.id = BodyID(len(w.bodies))
		w.bodies = append(w.bodies, b)
	}
	return b
}

// RemoveBody removes the body from the world. Its ID is recycled for bodies
// created later.
func (w *World) RemoveBody(b *Body) {
	assert.IsTrue(b != nil && b.w == w, "body does not belong to this world")
	w.bodies[b.id] = nil
	w.freeIDs = append(w.freeIDs, b.id)
	b.w = nil
}

// Lookup returns the body with the given ID, or nil if it was removed.
func (w *World) Lookup(id BodyID) *Body {
	if int(id) >= len(w.bodies) {
		return nil
	}
	return w.bodies[id]
}

// BodyCount returns the amount of live bodies in the world.
func (w *World) BodyCount() int {
	count := 0
	for _, b := range w.bodies {
		if b != nil {
			count++
		}
	}
	return count
}

// Step advances the simulation by dt seconds: every live dynamic body has
// gravity integrated into its velocity, its jump ramp advanced and its
// position resolved by the collider. Static bodies are skipped entirely.
func (w *World) Step(dt float32) {
	freeFall := w.collider.Source() == nil
	if freeFall {
		w.freeFallOnce.Do(func() {
			w.log.Warn("physics: stepping without a voxel source, bodies are in free fall")
		})
	}

	for _, b := range w.bodies {
		if b == nil || b.static {
			continue
		}

		if b.gravityAffected {
			b.vel = b.vel.Add(w.gravity.Mul(dt))
		}
		b.advanceJump(dt)

		if freeFall {
			b.SetPos(b.pos.Add(b.vel.Mul(dt)))
			b.onGround = false
			b.syncJumpPhase()
			continue
		}

		b.SetPos(w.collider.MoveBody(b, dt))

		if b.collideX {
			b.vel[0] = 0
		}
		if b.collideZ {
			b.vel[2] = 0
		}
		if b.collideY && b.vel[1] > 0 {
			b.cancelRise()
			b.vel[1] = 0
		}
		if b.onGround && b.vel[1] < -GroundSnapEpsilon {
			b.vel[1] = 0
		}
		b.syncJumpPhase()

		if b.autoJump && b.onGround && (b.collideX || b.collideZ) && !b.steppedUp {
			if b.StartJump(w.jumpVelocity, w.jumpRamp) {
				w.dbg.Notify(debug.ModeJump, true, "auto-jump id=%d at %v", b.id, b.pos)
			}
		}
	}
	w.clock += dt
}
