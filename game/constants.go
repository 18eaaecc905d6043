package game

const (
	DefaultGravityY     = float32(-9.81)
	DefaultJumpVelocity = float32(4.8)
	DefaultJumpRamp     = float32(0.12)
	AutoJumpCooldown    = float32(0.4)
	DefaultWalkSpeed    = float32(4.3)

	TicksPerSecond = 60
)
