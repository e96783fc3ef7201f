package leveldata

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDefinitionDefaults(t *testing.T) {
	def, err := DecodeDefinition(strings.NewReader("name: one\nlayout:\n  - \"p,1\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "one", def.Name)
	assert.Equal(t, DefaultTileSize, def.TileSize)
	assert.True(t, def.JumpSoundEnabled())
	assert.Equal(t, []string{"p,1"}, def.Layout)
}

func TestDecodeDefinitionJumpSoundOff(t *testing.T) {
	def, err := DecodeDefinition(strings.NewReader("name: quiet\njump_sound: false\ntile_size: 40\nlayout: [\"p\"]\n"))
	require.NoError(t, err)
	assert.False(t, def.JumpSoundEnabled())
	assert.Equal(t, 40, def.TileSize)
}

func TestDecodeDefinitionRejectsUnknownKeys(t *testing.T) {
	f, err := os.Open("testdata/unknown_key.yaml")
	require.NoError(t, err)
	defer f.Close()

	_, err = DecodeDefinition(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tilesize")
}

func TestDecodeDefinitionEmpty(t *testing.T) {
	_, err := DecodeDefinition(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = DecodeDefinition(strings.NewReader("name: nothing\n"))
	assert.ErrorIs(t, err, ErrEmptyLayout)
}

func TestDefinitionBuildReportsRaggedRow(t *testing.T) {
	def, err := LoadDefinition(os.DirFS("testdata"), "ragged.yaml")
	require.NoError(t, err)

	_, err = def.Build(DefaultCatalog())
	assert.ErrorIs(t, err, ErrRaggedRow)
	assert.Contains(t, err.Error(), "ragged")
}

func TestEncodeDefinitionRoundTrip(t *testing.T) {
	off := false
	in := Definition{Name: "rt", TileSize: 75, JumpSound: &off, Layout: sampleLayout}

	var buf bytes.Buffer
	require.NoError(t, EncodeDefinition(&buf, in))

	out, err := DecodeDefinition(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Layout, out.Layout)
	assert.False(t, out.JumpSoundEnabled())
}

func TestLoadTMX(t *testing.T) {
	def, err := LoadTMX(os.DirFS("testdata"), "small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", def.Name)
	assert.Equal(t, 50, def.TileSize)
	assert.False(t, def.JumpSoundEnabled())
	assert.Equal(t, []string{
		"0,0,0,0,0,0,0,0",
		"p,0,0,x,0,0,7,0",
		"1,1,1,1,1,1,1,1",
	}, def.Layout)

	g, err := def.Build(DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, Spawn{Row: 1, Col: 0, X: 0, Y: 50}, g.Player)
	assert.Len(t, g.Enemies, 1)
	assert.Len(t, g.Goal, 1)
	assert.Len(t, g.Solid, 8)
}

func TestLoadDefinitionsSortedByFileName(t *testing.T) {
	defs, err := LoadDefinitions(os.DirFS("testdata"), "levels")
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "meadow", defs[0].Name)
	assert.Equal(t, "levels/01-meadow.yaml", defs[0].Source)
	assert.Equal(t, "small", defs[1].Name)
	assert.Equal(t, "levels/02-small.tmx", defs[1].Source)
}

func TestLoadDefinitionsNameFallsBackToFileStem(t *testing.T) {
	fsys := fstest.MapFS{
		"lv/b.yaml": {Data: []byte("layout: [\"p\"]\n")},
		"lv/a.yml":  {Data: []byte("name: first\nlayout: [\"p\"]\n")},
	}
	defs, err := LoadDefinitions(fsys, "lv")
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "first", defs[0].Name)
	assert.Equal(t, "b", defs[1].Name)
}

func TestLoadDefinitionsEmptyDirectory(t *testing.T) {
	fsys := fstest.MapFS{"lv/notes.txt": {Data: []byte("nothing")}}
	_, err := LoadDefinitions(fsys, "lv")
	assert.Error(t, err)
}
