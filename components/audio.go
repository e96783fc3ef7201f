package components

import (
	"github.com/automoto/tilerunner/assets"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Sink       assets.AudioSink
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
