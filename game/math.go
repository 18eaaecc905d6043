package game

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var mcSinTable []float32

func init() {
	mcSinTable = make([]float32, 65536)
	for i := range 65536 {
		mcSinTable[i] = float32(math.Sin(float64(i) * math.Pi * 2 / 65536))
	}
}

// MCSin returns the table sin of the given angle in radians.
func MCSin(val float32) float32 {
	return mcSinTable[uint16(val*10430.378)&65535]
}

// MCCos returns the table cos of the given angle in radians.
func MCCos(val float32) float32 {
	return mcSinTable[uint16(val*10430.378+16384.0)&65535]
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Sign32 returns -1, 0 or 1 depending on the sign of the given value.
func Sign32(v float32) float32 {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// DirectionVector returns a horizontal unit direction vector from the given yaw in degrees.
func DirectionVector(yaw float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{-MCSin(yawRad), 0, MCCos(yawRad)}
}
