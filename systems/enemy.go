package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/systems/factory"
	"github.com/automoto/tilerunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies drifts every live enemy left and marks enemies that left the
// world as dead.
func UpdateEnemies(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Dead {
			return
		}
		obj := components.Object.Get(e)

		speedX := cfg.Enemy.Drift
		if obj.X <= 0 || obj.X >= float64(cfg.C.Width) {
			speedX = 0
		}
		stepActor(ecs, e, actorIntent{SpeedX: speedX})

		if obj.Y > cfg.KillLine() || obj.X < 0 {
			enemy.Dead = true
		}
	})
}

// LiveEnemyCount counts enemies not yet marked dead.
func LiveEnemyCount(ecs *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Enemy.Get(e).Dead {
			n++
		}
	})
	return n
}

// MaintainEnemyPopulation spawns one enemy at the respawn point when fewer
// than the configured population are alive. At the cap it does nothing.
func MaintainEnemyPopulation(ecs *ecs.ECS) {
	if LiveEnemyCount(ecs) >= cfg.Enemy.Population {
		return
	}
	factory.RespawnEnemy(ecs)
}

// SweepDeadEnemies removes enemies marked dead this frame from the world and
// the collision space.
func SweepDeadEnemies(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Dead {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		removeObject(ecs, e)
		ecs.World.Remove(e.Entity())
	}
}

func removeObject(ecs *ecs.ECS, e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
}
