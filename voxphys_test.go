package voxphys

import (
	"io"
	"log/slog"
	"testing"

	"github.com/chewxy/math32"
	"github.com/cubeforge/voxphys/debug"
	"github.com/cubeforge/voxphys/physics"
	"github.com/cubeforge/voxphys/settings"
	"github.com/cubeforge/voxphys/world"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func testLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEngineLandsBodyOnGeneratedTerrain(t *testing.T) {
	eng := New(testLog())
	world.Populate(eng.Terrain(), world.FlatGenerator{Surface: 64}, world.ChunkPos{0, 0}, 1)

	body := eng.Physics().CreateBody(physics.NewCapsule(0.3, 0.8))
	body.SetPos(mgl32.Vec3{8.5, 70, 8.5})

	dt := float32(1) / 60
	for i := 0; i < 600 && !body.OnGround(); i++ {
		eng.Step(dt)
	}

	if !body.OnGround() {
		t.Fatalf("body never landed, at %v", body.Pos())
	}
	if y := body.Pos().Y(); math32.Abs(y-65) > 0.002 {
		t.Fatalf("expected feet on the grass surface at 65, got %v", y)
	}
}

func TestEngineBlockEditsAffectCollision(t *testing.T) {
	eng := New(testLog())
	world.Populate(eng.Terrain(), world.FlatGenerator{Surface: 10}, world.ChunkPos{0, 0}, 0)

	// Overlay edits two blocks above the surface become a platform the body
	// lands on instead of the generated grass.
	for x := 6; x <= 10; x++ {
		for z := 6; z <= 10; z++ {
			eng.Terrain().SetBlock(cube.Pos{x, 13, z}, world.Plank)
		}
	}

	body := eng.Physics().CreateBody(physics.NewCapsule(0.3, 0.8))
	body.SetPos(mgl32.Vec3{8.5, 20, 8.5})

	dt := float32(1) / 60
	for i := 0; i < 600 && !body.OnGround(); i++ {
		eng.Step(dt)
	}

	if !body.OnGround() {
		t.Fatalf("body never landed, at %v", body.Pos())
	}
	if y := body.Pos().Y(); math32.Abs(y-14) > 0.002 {
		t.Fatalf("expected feet on the edited platform at 14, got %v", y)
	}
}

func TestNewWithSettingsAppliesConfig(t *testing.T) {
	s := settings.Default()
	s.Physics.GravityY = -3
	s.Physics.JumpVelocity = 6
	s.Physics.JumpRamp = 0.2
	s.Debug.Modes = []string{"sweep", "bogus"}

	eng := NewWithSettings(testLog(), s)
	if g := eng.Physics().Gravity(); g != (mgl32.Vec3{0, -3, 0}) {
		t.Fatalf("expected configured gravity, got %v", g)
	}
	if v, r := eng.Physics().JumpParams(); v != 6 || r != 0.2 {
		t.Fatalf("expected configured jump params, got velocity=%v ramp=%v", v, r)
	}
	if !eng.Physics().Dbg().Enabled(debug.ModeSweep) {
		t.Fatalf("expected the sweep debug mode toggled on")
	}
	if eng.Physics().Dbg().Enabled(debug.ModeJump) {
		t.Fatalf("expected untouched modes to stay off")
	}
}
