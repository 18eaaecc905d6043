// Package voxphys resolves continuous, collision-aware movement of upright
// capsule bodies through a sparse, chunked voxel grid, without a
// general-purpose rigid-body engine: terrain is swept implicitly through
// voxel queries instead of being held as collider objects.
package voxphys

import (
	"log/slog"

	"github.com/cubeforge/voxphys/debug"
	"github.com/cubeforge/voxphys/physics"
	"github.com/cubeforge/voxphys/settings"
	"github.com/cubeforge/voxphys/world"
	"github.com/go-gl/mathgl/mgl32"
)

// Engine couples a terrain world to the physics world that sweeps bodies
// against it.
type Engine struct {
	log     *slog.Logger
	terrain *world.World
	sim     *physics.World
}

// New returns an engine with an empty terrain world wired into a fresh
// physics world.
func New(log *slog.Logger) *Engine {
	terrain := world.New(log)
	sim := physics.NewWorld(log)
	sim.SetSource(terrain)

	return &Engine{
		log:     log,
		terrain: terrain,
		sim:     sim,
	}
}

// NewWithSettings returns an engine configured from the given settings.
func NewWithSettings(log *slog.Logger, s settings.Settings) *Engine {
	e := New(log)
	e.sim.SetGravity(mgl32.Vec3{0, s.Physics.GravityY, 0})
	e.sim.SetJumpParams(s.Physics.JumpVelocity, s.Physics.JumpRamp)
	for _, name := range s.Debug.Modes {
		mode, ok := debug.ParseMode(name)
		if !ok {
			log.Warn("unknown debug mode in settings", "name", name)
			continue
		}
		e.sim.Dbg().Toggle(mode)
	}
	return e
}

// Terrain returns the terrain world bodies collide against.
func (e *Engine) Terrain() *world.World {
	return e.terrain
}

// Physics returns the physics world owning the bodies of the engine.
func (e *Engine) Physics() *physics.World {
	return e.sim
}

// Step advances the simulation by dt seconds.
func (e *Engine) Step(dt float32) {
	e.sim.Step(dt)
}
