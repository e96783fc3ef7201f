package systems

import (
	"sync"

	"github.com/automoto/tilerunner/assets"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
		if err := globalAudioLoader.PreloadSFX(); err != nil {
			log.Warn("could not preload sound effects", "err", err)
		}
	})
}

// NewAudioSink returns the speaker-backed sink shared by every scene.
func NewAudioSink() assets.AudioSink {
	initGlobalAudio()
	return globalAudioLoader
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  cfg.Audio.DefaultSFXVol,
			Muted:      cfg.Audio.Muted,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// SetAudioSink routes queued sounds to sink.
func SetAudioSink(e *ecs.ECS, sink assets.AudioSink) {
	GetOrCreateAudio(e).Sink = sink
}

// QueueSound queues a sound effect to be played at the end of the frame.
func QueueSound(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	audioData := GetOrCreateAudio(e)
	audioData.SFXVolume = volume
	if loader, ok := audioData.Sink.(*assets.AudioLoader); ok {
		loader.SetVolume(volume)
	}
}

// UpdateAudio flushes the queued sound effects to the sink.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	pending := audioData.PendingSFX
	audioData.PendingSFX = audioData.PendingSFX[:0]

	if audioData.Muted || audioData.SFXVolume <= 0 || audioData.Sink == nil {
		return
	}
	for _, soundID := range pending {
		audioData.Sink.Play(soundID)
	}
}
