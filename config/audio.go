package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundGoal
)

func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundGoal:
		return "goal"
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int     `yaml:"sample_rate"`
	DefaultSFXVol float64 `yaml:"sfx_volume"`
	Muted         bool    `yaml:"muted"`
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func resetAudio() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump: "audio/sfx/jump.wav",
			SoundGoal: "audio/sfx/goal.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundGoal: 0.8,
		},
	}
}
