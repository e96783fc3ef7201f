package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CheckKill reports whether the player died this frame. Touching a live enemy
// kills the player and that enemy; falling below the kill line kills the
// player alone. The cause is recorded on the player as a Death component.
func CheckKill(e *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	if playerEntry.HasComponent(components.Death) {
		return true
	}
	player := rectOf(components.Object.Get(playerEntry).Object)

	var killer *donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if killer != nil || components.Enemy.Get(entry).Dead {
			return
		}
		if player.Overlaps(rectOf(components.Object.Get(entry).Object)) {
			killer = entry
		}
	})

	cause := components.DeathCause(0)
	switch {
	case killer != nil:
		components.Enemy.Get(killer).Dead = true
		cause = components.DeathByEnemy
	case player.Y > cfg.KillLine():
		cause = components.DeathByFall
	default:
		return false
	}

	donburi.Add(playerEntry, components.Death, &components.DeathData{Cause: cause})
	log.Debug("player died", "cause", cause)
	return true
}

// CheckAdvance reports whether the player reached a goal tile this frame. The
// player's box at its intended x is tested against every goal tile; only the
// first frame of a contact counts.
func CheckAdvance(e *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	obj := components.Object.Get(playerEntry).Object
	physics := components.Physics.Get(playerEntry)
	complete := GetOrCreateLevelComplete(e)

	box := rectOf(obj).Offset(physics.SpeedX, 0)
	touching := false
	tags.Goal.Each(e.World, func(entry *donburi.Entry) {
		if !touching && box.Overlaps(rectOf(components.Object.Get(entry).Object)) {
			touching = true
		}
	})

	rising := touching && !complete.Touching
	complete.Touching = touching
	if !rising {
		return false
	}

	QueueSound(e, cfg.SoundGoal)
	complete.IsComplete = true
	return true
}

// UpdateLevelChecks runs the kill and advance checks once per frame.
func UpdateLevelChecks(e *ecs.ECS) {
	if CheckKill(e) {
		return
	}
	CheckAdvance(e)
}
