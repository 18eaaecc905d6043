package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BodyID is the stable arena index of a body within its owning world. IDs are
// reused after removal, but a live body keeps its ID for its whole lifetime.
type BodyID uint32

// Body is the mutable per-entity state driven by the physics world. Positions
// follow the feet convention: the position is the bottom-center of the
// collision volume, not its center.
type Body struct {
	w  *World
	id BodyID

	shape *Shape

	pos, lastPos mgl32.Vec3
	vel, lastVel mgl32.Vec3

	static          bool
	gravityAffected bool
	onGround        bool

	collideX, collideY, collideZ bool
	steppedUp                    bool

	jumpPhase    JumpPhase
	jumpElapsed  float32
	jumpTarget   float32
	jumpDuration float32

	autoJump              bool
	autoJumpCooldownUntil float32
}

// ID returns the stable arena ID of the body.
func (b *Body) ID() BodyID {
	return b.id
}

// Shape returns the collision shape of the body, or nil if none is attached.
func (b *Body) Shape() *Shape {
	return b.shape
}

// Pos returns the feet position of the body.
func (b *Body) Pos() mgl32.Vec3 {
	return b.pos
}

// LastPos returns the previous feet position of the body.
func (b *Body) LastPos() mgl32.Vec3 {
	return b.lastPos
}

// SetPos sets the feet position of the body.
func (b *Body) SetPos(newPos mgl32.Vec3) {
	b.lastPos = b.pos
	b.pos = newPos
}

// Vel returns the velocity of the body.
func (b *Body) Vel() mgl32.Vec3 {
	return b.vel
}

// LastVel returns the previous velocity of the body.
func (b *Body) LastVel() mgl32.Vec3 {
	return b.lastVel
}

// SetVel sets the velocity of the body. Movement input mutates the velocity
// directly rather than going through a force accumulation API.
func (b *Body) SetVel(newVel mgl32.Vec3) {
	b.lastVel = b.vel
	b.vel = newVel
}

// Static returns wether or not the body is static. Static bodies are never
// integrated or moved.
func (b *Body) Static() bool {
	return b.static
}

// SetStatic sets wether or not the body is static.
func (b *Body) SetStatic(static bool) {
	b.static = static
}

// GravityAffected returns wether or not gravity is integrated into the body's
// velocity each step.
func (b *Body) GravityAffected() bool {
	return b.gravityAffected
}

// SetGravityAffected sets wether or not gravity affects the body.
func (b *Body) SetGravityAffected(affected bool) {
	b.gravityAffected = affected
}

// OnGround returns true if the body ended its last step in vertical contact
// with a solid voxel below it. Only the collision resolver writes this state.
func (b *Body) OnGround() bool {
	return b.onGround
}

// CollidedX returns true if the body was blocked on the X axis during its last
// step.
func (b *Body) CollidedX() bool {
	return b.collideX
}

// CollidedY returns true if the body was blocked on the Y axis during its last
// step.
func (b *Body) CollidedY() bool {
	return b.collideY
}

// CollidedZ returns true if the body was blocked on the Z axis during its last
// step.
func (b *Body) CollidedZ() bool {
	return b.collideZ
}

// SteppedUp returns true if the step-up assist lifted the body during its last
// step.
func (b *Body) SteppedUp() bool {
	return b.steppedUp
}

// AutoJump returns wether or not the body jumps on its own when a blocked
// horizontal move cannot be solved by the step-up assist.
func (b *Body) AutoJump() bool {
	return b.autoJump
}

// SetAutoJump toggles the auto-jump behavior of the body.
func (b *Body) SetAutoJump(enabled bool) {
	b.autoJump = enabled
}

// JumpPhase returns the current phase of the jump state machine.
func (b *Body) JumpPhase() JumpPhase {
	return b.jumpPhase
}

// BBox returns the collision box of the body at its current position. The box
// is rebuilt from the feet position and the shape half-extents on every call
// and is never persisted.
func (b *Body) BBox() cube.BBox {
	return b.shape.BBoxAt(b.pos)
}

// resetStepFlags clears the per-step collision state before a new resolution.
func (b *Body) resetStepFlags() {
	b.collideX = false
	b.collideY = false
	b.collideZ = false
	b.steppedUp = false
}
