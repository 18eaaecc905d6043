package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chewxy/math32"
	"github.com/cubeforge/voxphys"
	"github.com/cubeforge/voxphys/game"
	"github.com/cubeforge/voxphys/physics"
	"github.com/cubeforge/voxphys/settings"
	"github.com/cubeforge/voxphys/worker"
	"github.com/cubeforge/voxphys/world"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// The following program walks a capsule body across generated terrain on a
// fixed timestep and logs the trajectory. It exercises terrain streaming, the
// step assist on terraced slopes and the auto-jump on full-block risers.
func main() {
	conf, err := settings.Load("voxphys.toml")
	if err != nil {
		panic(err)
	}

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	lg.Level = logrus.DebugLevel

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	eng := voxphys.NewWithSettings(slog.New(slog.NewTextHandler(os.Stdout, nil)), conf)
	gen := generator(conf)

	spawn := world.ChunkPos{0, 0}
	world.Populate(eng.Terrain(), gen, spawn, conf.World.ViewRadius)
	lg.Infof("populated %d columns around chunk %v (%d cached module-wide)", eng.Terrain().ChunkCount(), spawn, world.CachedColumns())

	body := eng.Physics().CreateBody(physics.NewCapsule(0.3, 0.8))
	body.SetAutoJump(conf.Physics.AutoJump)
	body.SetPos(mgl32.Vec3{8.5, float32(conf.World.Surface) + 3, 8.5})

	walk(eng, body, game.DirectionVector(conf.Demo.Yaw), conf, gen, lg)
}

// generator returns the terrain generator the settings select.
func generator(conf settings.Settings) world.Generator {
	switch conf.World.Generator {
	case "flat":
		return world.FlatGenerator{Surface: conf.World.Surface}
	default:
		return world.TerraceGenerator{Floor: conf.World.Surface, Run: conf.World.Run}
	}
}

// walk drives the body along the given horizontal direction for the configured
// duration. Simulation time advances in fixed steps fed from a real-time
// accumulator, so slow wall-clock ticks replay as multiple steps instead of
// stretching dt.
func walk(eng *voxphys.Engine, body *physics.Body, dir mgl32.Vec3, conf settings.Settings, gen world.Generator, lg *logrus.Logger) {
	const dt = float32(1) / game.TicksPerSecond
	totalTicks := int(conf.Demo.Seconds * game.TicksPerSecond)

	vel := dir.Mul(conf.Demo.WalkSpeed)
	startPos := body.Pos()
	lastChunk := world.ChunkPosFromBlock(cube.PosFromVec3(startPos))
	stepTimes := make([]float64, 0, totalTicks)

	ticker := time.NewTicker(time.Second / game.TicksPerSecond)
	defer ticker.Stop()

	tick := 0
	var acc float32
	last := time.Now()
	for now := range ticker.C {
		acc += float32(now.Sub(last).Seconds())
		last = now

		for acc >= dt && tick < totalTicks {
			acc -= dt
			tick++

			v := body.Vel()
			v[0], v[2] = vel.X(), vel.Z()
			body.SetVel(v)

			stepStart := time.Now()
			eng.Step(dt)
			stepTimes = append(stepTimes, float64(time.Since(stepStart).Nanoseconds())/1e6)

			if cp := world.ChunkPosFromBlock(cube.PosFromVec3(body.Pos())); cp != lastChunk {
				lastChunk = cp
				stream(eng.Terrain(), gen, cp, conf.World.ViewRadius)
			}

			if tick%game.TicksPerSecond == 0 {
				pos := body.Pos()
				eye := pos.Add(mgl32.Vec3{0, body.Shape().Height() * 0.9, 0})
				ahead := "none"
				if hit, ok := eng.Terrain().TraceSolid(eye, eye.Add(dir.Mul(4))); ok {
					ahead = fmt.Sprintf("%v", hit)
				}
				lg.Infof("t=%.0fs pos=(%.2f, %.2f, %.2f) ground=%v phase=%v steppedUp=%v ahead=%s",
					float32(tick)/game.TicksPerSecond, pos.X(), pos.Y(), pos.Z(),
					body.OnGround(), body.JumpPhase(), body.SteppedUp(), ahead)
			}
		}
		if tick >= totalTicks {
			break
		}
	}

	end := body.Pos()
	lg.Infof("walked %.2f units horizontally, climbed %.2f units in %d ticks",
		math32.Sqrt(game.Vec3HzDistSqr(end.Sub(startPos))), end.Y()-startPos.Y(), tick)
	lg.Infof("step time: mean=%.3fms stddev=%.3fms median=%.3fms",
		game.Mean(stepTimes), game.StandardDeviation(stepTimes), game.Median(stepTimes))
	lg.Infof("%d columns loaded, %d cached module-wide", eng.Terrain().ChunkCount(), world.CachedColumns())
}

// stream asynchronously caches the ring of columns around the chunk the body
// moved into and drops the ones far behind it.
func stream(w *world.World, gen world.Generator, center world.ChunkPos, radius int32) {
	for x := center.X() - radius; x <= center.X()+radius; x++ {
		for z := center.Z() - radius; z <= center.Z()+radius; z++ {
			pos := world.ChunkPos{x, z}
			if w.IsChunkLoaded(pos.X(), pos.Z()) {
				continue
			}
			worker.Submit(func() {
				if _, err := world.Cache(w, pos, gen.Column(pos)); err != nil {
					logrus.Warnf("failed caching column at %v: %v", pos, err)
				}
			})
		}
	}
	w.CleanChunks(radius+2, center)
}
