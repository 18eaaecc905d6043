package physics

import (
	"github.com/cubeforge/voxphys/game"
)

// JumpPhase is the state of the jump state machine of a body.
type JumpPhase uint8

const (
	// JumpGrounded is the resting phase: the body is on the ground and no jump
	// is active.
	JumpGrounded JumpPhase = iota
	// JumpRising is the ascending phase: vertical velocity follows an eased
	// ramp towards the jump's target velocity.
	JumpRising
	// JumpFalling is the descending phase: gravity is back in charge until the
	// next ground contact.
	JumpFalling
)

// String returns the name of the jump phase.
func (p JumpPhase) String() string {
	switch p {
	case JumpGrounded:
		return "grounded"
	case JumpRising:
		return "rising"
	case JumpFalling:
		return "falling"
	}
	return "unknown"
}

// nextJumpPhase is the pure transition function of the jump state machine. It
// maps the current phase, the grounded state after resolution and the ramp
// progress to the next phase.
func nextJumpPhase(phase JumpPhase, grounded bool, elapsed, duration float32) JumpPhase {
	switch phase {
	case JumpGrounded:
		if !grounded {
			return JumpFalling
		}
		return JumpGrounded
	case JumpRising:
		if elapsed >= duration {
			return JumpFalling
		}
		return JumpRising
	case JumpFalling:
		if grounded {
			return JumpGrounded
		}
		return JumpFalling
	}
	return phase
}

// easeInCubic maps ramp progress in [0,1] to the eased fraction of the target
// velocity.
func easeInCubic(t float32) float32 {
	return t * t * t
}

// jumpVelocity returns the vertical velocity of a rising jump after elapsed
// seconds of a ramp that reaches target at duration.
func jumpVelocity(target, elapsed, duration float32) float32 {
	if elapsed >= duration {
		return target
	}
	return target * easeInCubic(elapsed/duration)
}

// StartJump begins a jump towards the given upward target velocity, eased over
// the given ramp duration. It only succeeds while the body is grounded and the
// jump cooldown has expired, and reports wether or not the jump started. The
// same ramp drives player jumps and auto-jumps so both feel consistent.
func (b *Body) StartJump(target, duration float32) bool {
	if b.jumpPhase != JumpGrounded || !b.onGround {
		return false
	}
	now := b.w.clock
	if now < b.autoJumpCooldownUntil {
		return false
	}

	b.jumpPhase = JumpRising
	b.jumpElapsed = 0
	b.jumpTarget = target
	b.jumpDuration = duration
	b.onGround = false
	b.autoJumpCooldownUntil = now + game.AutoJumpCooldown
	return true
}

// advanceJump progresses the jump ramp by dt. While rising, the vertical
// velocity is overridden by the eased ramp; the Y component left by gravity
// integration has no effect until the ramp hands over to free fall.
func (b *Body) advanceJump(dt float32) {
	if b.jumpPhase != JumpRising {
		return
	}
	b.jumpElapsed += dt
	b.vel[1] = jumpVelocity(b.jumpTarget, b.jumpElapsed, b.jumpDuration)
	b.jumpPhase = nextJumpPhase(b.jumpPhase, b.onGround, b.jumpElapsed, b.jumpDuration)
}

// cancelRise aborts an active rising ramp, used when the body hits a ceiling.
func (b *Body) cancelRise() {
	if b.jumpPhase == JumpRising {
		b.jumpPhase = JumpFalling
		b.vel[1] = 0
	}
}

// syncJumpPhase settles the jump phase against the grounded state produced by
// the last resolution.
func (b *Body) syncJumpPhase() {
	b.jumpPhase = nextJumpPhase(b.jumpPhase, b.onGround, b.jumpElapsed, b.jumpDuration)
}
