package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/automoto/tilerunner/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioSink plays logical sound events.
type AudioSink interface {
	Play(id config.SoundID)
}

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
	volume   float64
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		fsys:     audioFS,
		sfxCache: make(map[string][]byte),
		context:  ctx,
		volume:   config.Audio.DefaultSFXVol,
	}
}

// SetVolume sets the base volume for every sound played afterwards.
func (l *AudioLoader) SetVolume(v float64) {
	l.volume = v
}

// PreloadSFX decodes every configured sound effect so the first play does not
// stall.
func (l *AudioLoader) PreloadSFX() error {
	for _, path := range config.Sound.SFXPaths {
		if _, err := l.decoded(path); err != nil {
			return err
		}
	}
	return nil
}

// Play starts a fresh player for id. Failures are logged, never returned.
func (l *AudioLoader) Play(id config.SoundID) {
	path, ok := config.Sound.SFXPaths[id]
	if !ok {
		return
	}
	player, err := l.LoadSFX(path)
	if err != nil {
		log.Warn("could not play sound", "sound", id, "err", err)
		return
	}

	vol := l.volume
	if mult, ok := config.Sound.VolumeMultipliers[id]; ok {
		vol *= mult
	}
	player.SetVolume(vol)
	player.Play()
}

// LoadSFX loads a sound effect and returns a new player each time.
// SFX are cached as decoded bytes for instant playback.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	decoded, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

func (l *AudioLoader) decoded(path string) ([]byte, error) {
	if cached, ok := l.sfxCache[path]; ok {
		return cached, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".wav" {
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return decoded, nil
}
