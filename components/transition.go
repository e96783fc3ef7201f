package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransitionData drives the fade shown between levels. Alpha is the overlay
// opacity in [0, 1].
type TransitionData struct {
	Tween  *gween.Tween
	Alpha  float32
	Active bool
	Done   bool
}

var Transition = donburi.NewComponentType[TransitionData]()
