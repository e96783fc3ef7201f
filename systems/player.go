package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)

		right := GetAction(input, cfg.ActionMoveRight).Pressed
		left := GetAction(input, cfg.ActionMoveLeft).Pressed

		intent := actorIntent{Jump: GetAction(input, cfg.ActionJump).Pressed}
		switch {
		case right && obj.X <= float64(cfg.C.Width):
			intent.SpeedX = cfg.Player.Speed
		case left && obj.X >= 0:
			intent.SpeedX = -cfg.Player.Speed
		}

		if right {
			player.Direction.X = cfg.DirectionRight
		} else if left {
			player.Direction.X = cfg.DirectionLeft
		}

		stepActor(ecs, e, intent)
	})
}

// PlayerEntry returns the level's player.
func PlayerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}
