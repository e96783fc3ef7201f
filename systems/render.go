package systems

import (
	"github.com/automoto/tilerunner/components"
	"github.com/automoto/tilerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackgroundTiles renders decorative and goal tiles.
func DrawBackgroundTiles(ecs *ecs.ECS, screen *ebiten.Image) {
	drawTiles(ecs, screen, tags.Background)
}

// DrawSolidTiles renders the collidable tiles over the background.
func DrawSolidTiles(ecs *ecs.ECS, screen *ebiten.Image) {
	drawTiles(ecs, screen, tags.Solid)
}

func drawTiles(ecs *ecs.ECS, screen *ebiten.Image, tag *donburi.ComponentType[donburi.Tag]) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	tag.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Sprite) {
			return
		}
		o := components.Object.Get(e)
		img := components.Sprite.Get(e).Image
		if img == nil {
			return
		}
		// Viewport culling
		if o.X+o.W < 0 || o.X > width || o.Y+o.H < 0 || o.Y > height {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(o.X, o.Y)
		screen.DrawImage(img, drawOp)
	})
}

// DrawActors renders the player and enemies at their current animation frame.
// The player sprite is mirrored while facing left.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		img := components.Animation.Get(e).Image()
		if img == nil {
			return
		}

		drawOp.GeoM.Reset()
		if e.HasComponent(components.Player) && components.Player.Get(e).Direction.X < 0 {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
		}
		drawOp.GeoM.Translate(o.X, o.Y)
		screen.DrawImage(img, drawOp)
	})
}
