package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances actor frames on the wall-clock cadence. The player
// only animates while a direction is held; enemies always animate.
func UpdateAnimations(ecs *ecs.ECS) {
	now := factory.Now(ecs)
	input := getOrCreateInput(ecs)
	walking := GetAction(input, cfg.ActionMoveLeft).Pressed || GetAction(input, cfg.ActionMoveRight).Pressed

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}
		if anim.Kind == cfg.ActorPlayer && !walking {
			return
		}
		anim.CurrentAnimation.Update(now)
	})
}
