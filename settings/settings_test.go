package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxphys.toml")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected the default settings file to be written: %v", err)
	}

	// The written file loads back to the same settings.
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxphys.toml")

	custom := Default()
	custom.Physics.GravityY = -4.5
	custom.World.Generator = "flat"
	data, err := toml.Marshal(custom)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(-4.5), s.Physics.GravityY)
	assert.Equal(t, "flat", s.World.Generator)
	assert.Equal(t, Default().Demo.WalkSpeed, s.Demo.WalkSpeed)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxphys.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Physics]\nGravityY = -5.0\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(-5), s.Physics.GravityY)
	assert.Equal(t, Default().World.ViewRadius, s.World.ViewRadius)
	assert.True(t, s.Physics.AutoJump)
}
