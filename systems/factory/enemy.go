package factory

import (
	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/tags"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, x, y float64, frames []*ebiten.Image) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := float64(cfg.Enemy.FrameWidth), float64(cfg.Enemy.FrameHeight)
	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy

	// Enemies always face left.
	components.Enemy.SetValue(enemy, components.EnemyData{
		Direction: components.Vector{X: cfg.DirectionLeft, Y: 0},
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Falling,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{})
	components.Animation.SetValue(enemy, newAnimationData(ecs, cfg.ActorEnemy, frames))

	addToSpace(ecs, obj)
	return enemy
}

// RespawnEnemy spawns an enemy at the configured respawn point using the
// current level's images.
func RespawnEnemy(ecs *ecs.ECS) *donburi.Entry {
	var frames []*ebiten.Image
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if images := components.Level.Get(levelEntry).Images; images != nil {
			f, err := images.ActorFrames(cfg.ActorEnemy)
			if err != nil {
				log.Warn("enemy frames unavailable", "err", err)
			}
			frames = f
		}
	}
	return CreateEnemy(ecs, cfg.Enemy.RespawnX, cfg.Enemy.RespawnY, frames)
}
