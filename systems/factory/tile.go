package factory

import (
	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/components"
	"github.com/automoto/tilerunner/leveldata"
	"github.com/automoto/tilerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTile spawns a placed tile. Solid tiles collide; background and goal
// tiles are drawn behind everything, and goal tiles additionally carry the
// Goal tag.
func CreateTile(ecs *ecs.ECS, tile leveldata.Tile, img *ebiten.Image) *donburi.Entry {
	var entry *donburi.Entry
	var objTags []string
	switch tile.Class {
	case leveldata.Solid:
		entry = archetypes.SolidTile.Spawn(ecs)
		objTags = []string{tags.ResolvSolid}
	case leveldata.Goal:
		entry = archetypes.GoalTile.Spawn(ecs)
		objTags = []string{tags.ResolvBackground, tags.ResolvGoal}
	default:
		entry = archetypes.BackgroundTile.Spawn(ecs)
		objTags = []string{tags.ResolvBackground}
	}

	obj := resolv.NewObject(tile.X, tile.Y, tile.W, tile.H, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, tile.W, tile.H))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Tile.SetValue(entry, components.TileData{
		Code:  tile.Code,
		Class: tile.Class,
		Row:   tile.Row,
		Col:   tile.Col,
	})
	components.Sprite.SetValue(entry, components.SpriteData{Image: img})

	addToSpace(ecs, obj)
	return entry
}
