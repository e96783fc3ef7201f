package systems

import (
	"github.com/automoto/tilerunner/components"
	"github.com/automoto/tilerunner/tags"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{
			IsComplete: false,
		})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	return levelComplete.IsComplete
}

// IsPlayerDead checks whether the player was killed this frame.
func IsPlayerDead(e *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(e.World)
	return ok && playerEntry.HasComponent(components.Death)
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution once the level is
// complete or the player has died.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithLevelCompleteCheck(func(e *ecs.ECS) {
		if IsPlayerDead(e) {
			return
		}
		system(e)
	})
}
