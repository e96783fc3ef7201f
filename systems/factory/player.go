package factory

import (
	"time"

	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/assets/animations"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64, frames []*ebiten.Image) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.FrameWidth), float64(cfg.Player.FrameHeight)
	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight, Y: 0},
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Falling,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	components.Animation.SetValue(player, newAnimationData(ecs, cfg.ActorPlayer, frames))

	addToSpace(ecs, obj)
	return player
}

func newAnimationData(ecs *ecs.ECS, kind cfg.ActorKind, frames []*ebiten.Image) components.AnimationData {
	interval := time.Duration(cfg.Animation.FrameMillis) * time.Millisecond
	return components.AnimationData{
		CurrentAnimation: animations.NewAnimation(len(frames), interval, Now(ecs)),
		Frames:           frames,
		Kind:             kind,
	}
}
