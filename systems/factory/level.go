package factory

import (
	"fmt"

	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/assets"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/leveldata"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildLevel populates an empty world with the level described by def: the
// collision space, every tile, the player, the enemies and the level and camera
// singletons.
func BuildLevel(ecs *ecs.ECS, def leveldata.Definition, index, count int, images assets.ImageSource) (*donburi.Entry, error) {
	catalog, shadowed := leveldata.NewCatalog(leveldata.DefaultEntries)
	if len(shadowed) > 0 {
		log.Debug("duplicate tile codes ignored", "codes", shadowed)
	}

	grid, err := def.Build(catalog)
	if err != nil {
		return nil, err
	}

	width := max(grid.Width(), cfg.C.Width) + grid.TileSize
	height := max(grid.Height(), cfg.C.Height) + int(cfg.Level.KillMargin)
	CreateSpace(ecs, width, height, SpaceCellSize, SpaceCellSize)

	for _, bucket := range [][]leveldata.Tile{grid.Background, grid.Solid} {
		for _, tile := range bucket {
			img, err := tileImage(images, tile.Code)
			if err != nil {
				return nil, fmt.Errorf("level %s: %w", grid.ID, err)
			}
			CreateTile(ecs, tile, img)
		}
	}

	playerFrames, err := actorFrames(images, cfg.ActorPlayer)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", grid.ID, err)
	}
	CreatePlayer(ecs, grid.Player.X, grid.Player.Y, playerFrames)

	enemyFrames, err := actorFrames(images, cfg.ActorEnemy)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", grid.ID, err)
	}
	for _, spawn := range grid.Enemies {
		CreateEnemy(ecs, spawn.X, spawn.Y, enemyFrames)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Definition: def,
		Grid:       grid,
		LevelIndex: index,
		LevelCount: count,
		JumpSound:  def.JumpSoundEnabled(),
		Images:     images,
	})
	CreateCamera(ecs)

	log.Info("level loaded",
		"name", grid.ID,
		"index", index,
		"solid", len(grid.Solid),
		"background", len(grid.Background),
		"enemies", len(grid.Enemies),
	)
	return level, nil
}

func tileImage(images assets.ImageSource, code leveldata.Code) (*ebiten.Image, error) {
	if images == nil {
		return nil, nil
	}
	return images.TileImage(code)
}

func actorFrames(images assets.ImageSource, kind cfg.ActorKind) ([]*ebiten.Image, error) {
	if images == nil {
		return nil, nil
	}
	return images.ActorFrames(kind)
}
