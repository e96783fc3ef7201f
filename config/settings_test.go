package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	Reset()

	assert.Equal(t, 825, C.Width)
	assert.Equal(t, 825, C.Height)
	assert.Equal(t, 3.5, Physics.FallSpeed)
	assert.Equal(t, -3.0, Physics.JumpSpeed)
	assert.Equal(t, 2.0, Player.Speed)
	assert.Equal(t, -0.5, Enemy.Drift)
	assert.Equal(t, 4, Enemy.Population)
	assert.Equal(t, 200.0, Camera.Margin)
	assert.Equal(t, 900.0, KillLine())
	assert.Equal(t, 100, Animation.FrameMillis)
}

func TestLoadFileOverlaysOnlyGivenKeys(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.NoError(t, LoadFile("testdata/overrides.yaml"))

	assert.Equal(t, 640, C.Width)
	assert.Equal(t, 825, C.Height)
	assert.Equal(t, 4.0, Physics.FallSpeed)
	assert.Equal(t, -3.0, Physics.JumpSpeed)
	assert.Equal(t, 2, Enemy.Population)
	assert.Equal(t, 800.0, Enemy.RespawnX)
	assert.True(t, Audio.Muted)
	assert.Equal(t, SkyBlue, UI.BackgroundColor)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Load(strings.NewReader("camera:\n  margn: 10\n"))
	require.Error(t, err)
	assert.Equal(t, 200.0, Camera.Margin)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cases := []string{
		"window:\n  width: 0\n",
		"level:\n  kill_margin: -1\n",
		"enemy:\n  population: -3\n",
		"audio:\n  sfx_volume: 2\n",
	}
	for _, doc := range cases {
		err := Load(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrInvalidSetting, doc)
	}
	assert.Equal(t, 825, C.Width)
	assert.Equal(t, 900.0, KillLine())
}

func TestLoadEmptyDocumentKeepsDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.NoError(t, Load(strings.NewReader("")))
	assert.Equal(t, 825, C.Width)
}

func TestLoadRejectsRemovedKeys(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	for _, doc := range []string{
		"level:\n  tile_size: 40\n",
		"player:\n  frame_count: 9\n",
	} {
		assert.Error(t, Load(strings.NewReader(doc)), doc)
	}
}

func TestLoadFileMissing(t *testing.T) {
	assert.Error(t, LoadFile("testdata/does-not-exist.yaml"))
}
