package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the layout of a YAML settings overlay. Every section is optional and
// only the keys present replace the defaults.
type file struct {
	Window    *Config          `yaml:"window"`
	Physics   *PhysicsConfig   `yaml:"physics"`
	Player    *PlayerConfig    `yaml:"player"`
	Enemy     *EnemyConfig     `yaml:"enemy"`
	Camera    *CameraConfig    `yaml:"camera"`
	Level     *LevelConfig     `yaml:"level"`
	Animation *AnimationConfig `yaml:"animation"`
	UI        *UIConfig        `yaml:"ui"`
	Audio     *AudioConfig     `yaml:"audio"`
	Debug     *DebugConfig     `yaml:"debug"`
}

// Load overlays YAML settings from r onto the current values. Unknown keys are
// rejected, and nothing changes unless the whole document is valid.
func Load(r io.Reader) error {
	window := *C
	doc := file{
		Window:    &window,
		Physics:   ptr(Physics),
		Player:    ptr(Player),
		Enemy:     ptr(Enemy),
		Camera:    ptr(Camera),
		Level:     ptr(Level),
		Animation: ptr(Animation),
		UI:        ptr(UI),
		Audio:     ptr(Audio),
		Debug:     ptr(Debug),
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode settings: %w", err)
	}
	if err := validate(doc); err != nil {
		return err
	}

	C = doc.Window
	Physics = *doc.Physics
	Player = *doc.Player
	Enemy = *doc.Enemy
	Camera = *doc.Camera
	Level = *doc.Level
	Animation = *doc.Animation
	UI = *doc.UI
	Audio = *doc.Audio
	Debug = *doc.Debug
	return nil
}

// LoadFile overlays the YAML settings stored at path.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	if err := Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

var ErrInvalidSetting = errors.New("invalid setting")

func validate(doc file) error {
	switch {
	case doc.Window.Width <= 0 || doc.Window.Height <= 0:
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalidSetting, doc.Window.Width, doc.Window.Height)
	case doc.Window.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive", ErrInvalidSetting)
	case doc.Level.KillMargin < 0:
		return fmt.Errorf("%w: kill_margin cannot be negative", ErrInvalidSetting)
	case doc.Enemy.Population < 0:
		return fmt.Errorf("%w: enemy population cannot be negative", ErrInvalidSetting)
	case doc.Animation.FrameMillis <= 0:
		return fmt.Errorf("%w: frame_millis must be positive", ErrInvalidSetting)
	case doc.Audio.DefaultSFXVol < 0 || doc.Audio.DefaultSFXVol > 1:
		return fmt.Errorf("%w: sfx_volume must be within [0, 1]", ErrInvalidSetting)
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
