package components

import (
	"github.com/automoto/tilerunner/assets/animations"
	"github.com/automoto/tilerunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	Frames           []*ebiten.Image
	Kind             config.ActorKind
}

// Image returns the frame to draw, or nil when no frames are loaded.
func (a *AnimationData) Image() *ebiten.Image {
	if a.CurrentAnimation == nil || len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[a.CurrentAnimation.Frame()%len(a.Frames)]
}

var Animation = donburi.NewComponentType[AnimationData]()
