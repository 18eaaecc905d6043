package settings

import (
	"os"

	"github.com/cubeforge/voxphys/game"
	"github.com/cubeforge/voxphys/verror"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for a voxphys
// simulation and the demo around it.
type Settings struct {
	Physics struct {
		// GravityY is the vertical gravity acceleration in units per second
		// squared. Negative values pull bodies down.
		GravityY float32
		// JumpVelocity is the upward velocity a jump ramps towards.
		JumpVelocity float32
		// JumpRamp is the duration in seconds over which a jump eases towards
		// JumpVelocity.
		JumpRamp float32
		// AutoJump is wether or not bodies jump on their own when the step
		// assist cannot solve a blocked horizontal move.
		AutoJump bool
	}
	World struct {
		// ViewRadius is the radius in chunk columns kept loaded around a
		// moving body.
		ViewRadius int32
		// Generator selects the terrain of the demo: "flat" or "terrace".
		Generator string
		// Surface is the grass surface height of the generated terrain.
		Surface int
		// Run is the amount of blocks between terrace risers.
		Run int32
	}
	Demo struct {
		// Seconds is how long the demo walks the body.
		Seconds float32
		// WalkSpeed is the horizontal speed of the body in units per second.
		WalkSpeed float32
		// Yaw is the walking direction in degrees.
		Yaw float32
	}
	Debug struct {
		// Modes lists the diagnostic modes enabled at startup, e.g. "sweep",
		// "step_up", "jump".
		Modes []string
	}
}

// Default returns the default settings.
func Default() Settings {
	s := Settings{}
	s.Physics.GravityY = game.DefaultGravityY
	s.Physics.JumpVelocity = game.DefaultJumpVelocity
	s.Physics.JumpRamp = game.DefaultJumpRamp
	s.Physics.AutoJump = true

	s.World.ViewRadius = 8
	s.World.Generator = "terrace"
	s.World.Surface = 64
	s.World.Run = 8

	s.Demo.Seconds = 30
	s.Demo.WalkSpeed = game.DefaultWalkSpeed
	s.Demo.Yaw = -90

	return s
}

// Load reads the settings from the file at the given path. If the file does
// not exist it is created with the defaults first, so a fresh run leaves a
// file to edit behind.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		s := Default()
		data, err := toml.Marshal(s)
		if err != nil {
			return s, verror.New("failed encoding default settings: %v", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return s, verror.New("failed creating settings file: %v", err)
		}
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, verror.New("error reading settings: %v", err)
	}

	settings := Default()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, verror.New("error decoding settings: %v", err)
	}
	return settings, nil
}
