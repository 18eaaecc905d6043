package physics

const (
	// SkinWidth is the safety margin kept between a resolved contact and the
	// actual voxel face, so a resting body does not sit exactly on the boundary.
	SkinWidth = float32(0.001)
	// SkinThreshold is the fraction of the desired displacement below which the
	// skin margin is not applied. Correcting a zero-time contact would bleed
	// velocity through repeated micro-corrections.
	SkinThreshold = float32(0.01)

	// MaxAxisPasses bounds the resolution iterations of a single axis sweep.
	// Displacement left over past the cap is dropped and reported.
	MaxAxisPasses = 6
	// MaxPassDistance is the furthest a single sweep pass travels along its
	// axis. Longer displacements run through several passes.
	MaxPassDistance = float32(1)
	// MaxSearchBlocks bounds the amount of candidate voxels considered in one
	// axis sweep.
	MaxSearchBlocks = 1024

	// StepAcceptance is the fraction of the desired horizontal distance a lifted
	// retry must cover for a step-up to be accepted.
	StepAcceptance = float32(0.9)

	// GroundSnapEpsilon is the vertical displacement magnitude under which a
	// previously grounded body is still considered resting.
	GroundSnapEpsilon = float32(1e-5)
	// VelocityEpsilon is the velocity magnitude under which an axis is treated
	// as stationary.
	VelocityEpsilon = float32(1e-7)
)

// StepHeights holds the candidate lift heights of the step-up assist, smallest
// first.
var StepHeights = [...]float32{0.25, 0.5}
