package factory

import (
	"time"

	"github.com/automoto/tilerunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateClock returns the world's clock, creating one on the wall clock
// if none exists.
func GetOrCreateClock(e *ecs.ECS) *donburi.Entry {
	if _, ok := components.Clock.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Clock))
		components.Clock.SetValue(ent, components.ClockData{Now: time.Now})
	}
	ent, _ := components.Clock.First(e.World)
	return ent
}

// SetClock replaces the world's time source.
func SetClock(e *ecs.ECS, now func() time.Time) {
	components.Clock.Get(GetOrCreateClock(e)).Now = now
}

// Now reads the world's time source.
func Now(e *ecs.ECS) time.Time {
	clock := components.Clock.Get(GetOrCreateClock(e))
	if clock.Now == nil {
		return time.Now()
	}
	return clock.Now()
}
