package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, Rect{X: 12, Y: 17, W: 30, H: 40}, r.Offset(2, -3))
}

func TestRectOverlaps(t *testing.T) {
	tile := Rect{X: 0, Y: 0, W: 75, H: 75}
	cases := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{X: 10, Y: 10, W: 20, H: 27}, true},
		{"partial", Rect{X: 70, Y: 70, W: 20, H: 27}, true},
		{"sub-pixel", Rect{X: 74.5, Y: 10, W: 20, H: 27}, true},
		{"touching right edge", Rect{X: 75, Y: 10, W: 20, H: 27}, false},
		{"touching top edge", Rect{X: 10, Y: -27, W: 20, H: 27}, false},
		{"apart", Rect{X: 200, Y: 200, W: 20, H: 27}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.r.Overlaps(tile))
			assert.Equal(t, c.want, tile.Overlaps(c.r))
		})
	}
}

func TestClampHelpers(t *testing.T) {
	assert.Equal(t, 0.0, AtMostZero(3))
	assert.Equal(t, -3.0, AtMostZero(-3))
	assert.Equal(t, 0.0, AtLeastZero(-1))
	assert.Equal(t, 4.0, AtLeastZero(4))
}
