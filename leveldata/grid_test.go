package leveldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleLayout = []string{
	"0,0,0,0,0,0,0,0,0,0,0",
	"0,0,0,0,0,0,0,0,0,0,0",
	"0,0,0,0,0,0,0,0,0,0,0",
	"0,0,0,0,0,0,0,0,0,0,0",
	"0,0,0,0,0,0,0,0,0,0,0",
	"4,5,r,0,0,0,0,0,0,0,0",
	"-,-,m,0,0,0,0,0,0,0,0",
	"-,-,m,0,0,0,0,0,p,0,0",
	"-,-,m,0,0,0,0,l,5,5,6",
	"1,2,2,R,0,A,0,n,-,-,-",
	"-,-,-,M,0,I,0,n,-,-,-",
}

func TestBuildSampleLayout(t *testing.T) {
	catalog := DefaultCatalog()
	g, err := Build(sampleLayout, 75, "sample", catalog)
	require.NoError(t, err)

	assert.Equal(t, 11, g.Rows)
	assert.Equal(t, 11, g.Cols)
	assert.Equal(t, Spawn{Row: 7, Col: 8, X: 300, Y: 525}, g.Player)
	assert.Empty(t, g.Enemies)
	assert.Empty(t, g.Goal)

	assert.Len(t, g.Solid, 14)
	assert.Len(t, g.Background, 20)
	assert.Equal(t, g.Count(catalog, Solid), len(g.Solid))
	assert.Equal(t, g.Count(catalog, Background)+g.Count(catalog, Goal), len(g.Background))

	for _, tile := range g.Solid {
		assert.Equal(t, float64(tile.Col*75/2), tile.X)
		assert.Equal(t, float64(tile.Row*75), tile.Y)
		assert.Equal(t, 75.0, tile.W)
		assert.Equal(t, 75.0, tile.H)
	}
}

func TestCellOriginFloorsHalfColumns(t *testing.T) {
	cases := []struct {
		row, col, size int
		x, y           float64
	}{
		{0, 0, 75, 0, 0},
		{0, 1, 75, 37, 0},
		{2, 3, 75, 112, 150},
		{1, 5, 50, 125, 50},
	}
	for _, c := range cases {
		x, y := CellOrigin(c.row, c.col, c.size)
		assert.Equal(t, c.x, x, "row %d col %d", c.row, c.col)
		assert.Equal(t, c.y, y, "row %d col %d", c.row, c.col)
	}
}

func TestBuildBuckets(t *testing.T) {
	layout := []string{
		"0,0,0,0",
		"p,x,7,x",
		"1,-,?,F",
	}
	catalog := DefaultCatalog()
	g, err := Build(layout, 10, "buckets", catalog)
	require.NoError(t, err)

	require.Len(t, g.Goal, 1)
	assert.Equal(t, Code('7'), g.Goal[0].Code)
	assert.Len(t, g.Background, 2, "background holds '-' and the goal tile")
	assert.Len(t, g.Solid, 2, "unknown '?' places nothing")
	require.Len(t, g.Enemies, 2)
	assert.Equal(t, Spawn{Row: 1, Col: 1, X: 5, Y: 10}, g.Enemies[0])
	assert.Equal(t, Spawn{Row: 1, Col: 3, X: 15, Y: 10}, g.Enemies[1])

	assert.Equal(t, 25, g.Width())
	assert.Equal(t, 30, g.Height())
}

func TestBuildErrors(t *testing.T) {
	catalog := DefaultCatalog()
	cases := []struct {
		name   string
		layout []string
		size   int
		want   error
	}{
		{"empty", nil, 75, ErrEmptyLayout},
		{"ragged", []string{"0,0,0", "p,1"}, 75, ErrRaggedRow},
		{"wide cell", []string{"p,11"}, 75, ErrBadCell},
		{"blank cell", []string{"p,,1"}, 75, ErrBadCell},
		{"no player", []string{"0,1"}, 75, ErrNoPlayer},
		{"two players", []string{"p,p"}, 75, ErrMultiplePlayers},
		{"zero tile size", []string{"p"}, 0, ErrBadTileSize},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Build(c.layout, c.size, c.name, catalog)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestParseTrimsCells(t *testing.T) {
	cells, err := Parse([]string{" p , 1 ", "0,x"})
	require.NoError(t, err)
	assert.Equal(t, [][]Code{{'p', '1'}, {'0', 'x'}}, cells)
}

func TestFormatLayoutRoundTrip(t *testing.T) {
	catalog := DefaultCatalog()
	first, err := Build(sampleLayout, 75, "a", catalog)
	require.NoError(t, err)

	formatted := FormatLayout(first.Cells)
	assert.Equal(t, sampleLayout, formatted)

	second, err := Build(formatted, 75, "a", catalog)
	require.NoError(t, err)
	assert.Equal(t, first.Solid, second.Solid)
	assert.Equal(t, first.Background, second.Background)
	assert.Equal(t, first.Player, second.Player)
}
