package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateTransition returns the singleton Transition component, creating if needed
func GetOrCreateTransition(e *ecs.ECS) *components.TransitionData {
	if _, ok := components.Transition.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Transition))
	}
	ent, _ := components.Transition.First(e.World)
	return components.Transition.Get(ent)
}

// StartFade tweens the overlay opacity from one value to another over the
// configured number of frames.
func StartFade(e *ecs.ECS, from, to float32) {
	t := GetOrCreateTransition(e)
	seconds := float32(cfg.Level.TransitionFrames) / float32(cfg.C.TPS)
	t.Tween = gween.New(from, to, seconds, ease.Linear)
	t.Alpha = from
	t.Active = true
	t.Done = false
}

// UpdateTransition advances the running fade by one tick.
func UpdateTransition(e *ecs.ECS) {
	t := GetOrCreateTransition(e)
	if !t.Active || t.Tween == nil {
		return
	}

	alpha, finished := t.Tween.Update(1 / float32(cfg.C.TPS))
	t.Alpha = alpha
	if finished {
		t.Active = false
		t.Done = true
	}
}

// TransitionDone reports whether a started fade has finished.
func TransitionDone(e *ecs.ECS) bool {
	return GetOrCreateTransition(e).Done
}

func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	t := GetOrCreateTransition(e)
	if t.Alpha <= 0 {
		return
	}
	c := cfg.Black
	c.A = uint8(min(t.Alpha, 1) * 255)
	vector.DrawFilledRect(screen, 0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		c, false)
}
