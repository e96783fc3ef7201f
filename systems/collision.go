package systems

import (
	"github.com/automoto/tilerunner/components"
	"github.com/automoto/tilerunner/gamemath"
	"github.com/automoto/tilerunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func rectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// overlapping returns the rects of every entity with tag that strictly
// overlaps box. Tiles scrolled past the resolv space still count.
func overlapping(world donburi.World, tag *donburi.ComponentType[donburi.Tag], box gamemath.Rect) []gamemath.Rect {
	var hits []gamemath.Rect
	tag.Each(world, func(entry *donburi.Entry) {
		r := rectOf(components.Object.Get(entry).Object)
		if box.Overlaps(r) {
			hits = append(hits, r)
		}
	})
	return hits
}

// solidsNear returns the solid tiles overlapping obj moved by (dx, dy).
func solidsNear(world donburi.World, obj *resolv.Object, dx, dy float64) []gamemath.Rect {
	return overlapping(world, tags.Solid, rectOf(obj).Offset(dx, dy))
}

// resolveHorizontal zeroes speedX when the box moved by it would overlap any
// solid tile.
func resolveHorizontal(world donburi.World, obj *resolv.Object, speedX float64) float64 {
	if speedX == 0 {
		return 0
	}
	if len(solidsNear(world, obj, speedX, 0)) > 0 {
		return 0
	}
	return speedX
}

// verticalResult is the outcome of testing one frame of vertical motion.
type verticalResult struct {
	Move   float64 // distance to apply this frame
	SpeedY float64
	Landed bool
}

// resolveVertical tests the box moved by speedY against solid tiles. Moving up
// into a tile stops the box at the tile's underside; moving down stops it on
// the tile's top and lands it.
func resolveVertical(world donburi.World, obj *resolv.Object, speedY float64) verticalResult {
	res := verticalResult{Move: speedY, SpeedY: speedY}
	if speedY == 0 {
		return res
	}

	hits := solidsNear(world, obj, 0, speedY)
	if len(hits) == 0 {
		return res
	}

	box := rectOf(obj)
	if speedY < 0 {
		move := hits[0].Bottom() - box.Top()
		for _, r := range hits[1:] {
			move = max(move, r.Bottom()-box.Top())
		}
		move = gamemath.AtMostZero(move)
		return verticalResult{Move: move, SpeedY: move}
	}

	move := hits[0].Top() - box.Bottom()
	for _, r := range hits[1:] {
		move = min(move, r.Top()-box.Bottom())
	}
	return verticalResult{Move: gamemath.AtLeastZero(move), Landed: true}
}
