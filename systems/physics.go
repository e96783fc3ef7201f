package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// actorIntent is what an actor wants to do this frame.
type actorIntent struct {
	SpeedX float64
	Jump   bool
}

// stepActor runs one frame of axis-separated motion for an actor: gravity,
// horizontal test, vertical test, jump trigger, jump counter, then commit.
func stepActor(e *ecs.ECS, entry *donburi.Entry, intent actorIntent) {
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry).Object

	if !physics.Jumping {
		physics.SpeedY = cfg.Physics.FallSpeed
		physics.Falling = true
	}

	physics.SpeedX = resolveHorizontal(e.World, obj, intent.SpeedX)

	vert := resolveVertical(e.World, obj, physics.SpeedY)
	physics.SpeedY = vert.SpeedY
	moveY := vert.Move
	if vert.Landed {
		physics.Jumping = false
		physics.Falling = false
	}

	if intent.Jump && !physics.Jumping && !physics.Falling {
		physics.Jumping = true
		physics.SpeedY = cfg.Physics.JumpSpeed
		physics.JumpIncrement = cfg.Physics.JumpIncrement
		moveY = physics.SpeedY
		if levelJumpSound(e) {
			QueueSound(e, cfg.SoundJump)
		}
	}

	physics.JumpCounter += physics.JumpIncrement
	if physics.JumpCounter > cfg.Physics.JumpThreshold {
		physics.Jumping = false
		physics.Falling = false
		physics.SpeedY = cfg.Physics.FallSpeed
		physics.JumpCounter = 0
		physics.JumpIncrement = 0
	}

	physics.MoveX = physics.SpeedX
	physics.MoveY = moveY
	obj.X += physics.MoveX
	obj.Y += physics.MoveY
}

func levelJumpSound(e *ecs.ECS) bool {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return true
	}
	return components.Level.Get(entry).JumpSound
}
