package game

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// VoxelsBetween yields the voxel positions crossed by the segment from start
// to end, in traversal order starting at the voxel holding start.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func VoxelsBetween(start, end mgl32.Vec3) iter.Seq[cube.Pos] {
	return func(yield func(cube.Pos) bool) {
		delta := end.Sub(start)
		if delta.LenSqr() == 0 {
			return
		}

		dist := delta.Len()
		dirVec := delta.Mul(1 / dist)

		stepX := Sign32(dirVec.X())
		stepY := Sign32(dirVec.Y())
		stepZ := Sign32(dirVec.Z())

		tMaxX := distanceToBoundary(start.X(), dirVec.X())
		tMaxY := distanceToBoundary(start.Y(), dirVec.Y())
		tMaxZ := distanceToBoundary(start.Z(), dirVec.Z())

		tDeltaX := float32(0)
		if dirVec.X() != 0 {
			tDeltaX = stepX / dirVec.X()
		}

		tDeltaY := float32(0)
		if dirVec.Y() != 0 {
			tDeltaY = stepY / dirVec.Y()
		}

		tDeltaZ := float32(0)
		if dirVec.Z() != 0 {
			tDeltaZ = stepZ / dirVec.Z()
		}

		current := cube.PosFromVec3(start)
		for {
			if !yield(current) {
				return
			}

			if tMaxX < tMaxY && tMaxX < tMaxZ {
				if tMaxX > dist {
					return
				}
				current = current.Add(cube.Pos{int(stepX)})
				tMaxX += tDeltaX
			} else if tMaxY < tMaxZ {
				if tMaxY > dist {
					return
				}
				current = current.Add(cube.Pos{0, int(stepY)})
				tMaxY += tDeltaY
			} else {
				if tMaxZ > dist {
					return
				}
				current = current.Add(cube.Pos{0, 0, int(stepZ)})
				tMaxZ += tDeltaZ
			}
		}
	}
}

// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func distanceToBoundary(s, ds float32) float32 {
	if ds == 0 {
		return math32.MaxFloat32
	}

	if ds < 0 {
		s = -s
		ds = -ds

		if math32.Floor(s) == s {
			return 0
		}
	}

	return (1 - (s - math32.Floor(s))) / ds
}
