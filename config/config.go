package config

import "image/color"

// Config holds the window size in pixels.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// PhysicsConfig contains the per-frame motion constants shared by every actor.
type PhysicsConfig struct {
	FallSpeed     float64 `yaml:"fall_speed"`
	JumpSpeed     float64 `yaml:"jump_speed"`     // upward burst applied each frame of a jump
	JumpIncrement float64 `yaml:"jump_increment"` // added to the jump counter each frame
	JumpThreshold float64 `yaml:"jump_threshold"` // counter value that ends a jump
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed       float64 `yaml:"speed"`
	FrameWidth  int     `yaml:"frame_width"`
	FrameHeight int     `yaml:"frame_height"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Drift       float64 `yaml:"drift"`
	FrameWidth  int     `yaml:"frame_width"`
	FrameHeight int     `yaml:"frame_height"`

	// Population is the number of live enemies kept on the map.
	Population int     `yaml:"population"`
	RespawnX   float64 `yaml:"respawn_x"`
	RespawnY   float64 `yaml:"respawn_y"`
}

// CameraConfig controls when and how fast the world scrolls.
type CameraConfig struct {
	Margin float64 `yaml:"margin"` // distance from either window edge where scrolling starts
	Speed  float64 `yaml:"speed"`
}

// LevelConfig describes bounds shared by every level. Tile size belongs to
// each level file.
type LevelConfig struct {
	// KillMargin is added to the window height to get the fall-out line.
	KillMargin float64 `yaml:"kill_margin"`

	// TransitionFrames is the length of the fade between levels.
	TransitionFrames int `yaml:"transition_frames"`
}

// AnimationConfig contains frame timing for actor animations.
type AnimationConfig struct {
	FrameMillis int `yaml:"frame_millis"`
}

type UIConfig struct {
	HUDFontSize   float64 `yaml:"hud_font_size"`
	DebugFontSize float64 `yaml:"debug_font_size"`
	HUDMargin     float64 `yaml:"hud_margin"`

	BackgroundColor color.RGBA `yaml:"-"`
	HUDTextColor    color.RGBA `yaml:"-"`
	DebugColor      color.RGBA `yaml:"-"`
	GoalDebugColor  color.RGBA `yaml:"-"`
}

type DebugConfig struct {
	ShowColliders bool `yaml:"show_colliders"`
}

var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Camera CameraConfig
var Level LevelConfig
var Animation AnimationConfig
var UI UIConfig
var Debug DebugConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	SkyBlue      = color.RGBA{R: 9, G: 175, B: 236, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every setting to its built-in default.
func Reset() {
	C = &Config{
		Width:  825,
		Height: 825,
		TPS:    60,
		Title:  "Tilerunner",
	}

	Physics = PhysicsConfig{
		FallSpeed:     3.5,
		JumpSpeed:     -3,
		JumpIncrement: 1.5,
		JumpThreshold: 50,
	}

	Player = PlayerConfig{
		Speed:       2,
		FrameWidth:  20,
		FrameHeight: 27,
	}

	Enemy = EnemyConfig{
		Drift:       -0.5,
		FrameWidth:  20,
		FrameHeight: 27,
		Population:  4,
		RespawnX:    800,
		RespawnY:    720,
	}

	Camera = CameraConfig{
		Margin: 200,
		Speed:  2,
	}

	Level = LevelConfig{
		KillMargin:       75,
		TransitionFrames: 30,
	}

	Animation = AnimationConfig{
		FrameMillis: 100,
	}

	UI = UIConfig{
		HUDFontSize:     18,
		DebugFontSize:   12,
		HUDMargin:       10,
		BackgroundColor: SkyBlue,
		HUDTextColor:    White,
		DebugColor:      Red,
		GoalDebugColor:  Yellow,
	}

	Debug = DebugConfig{}

	resetAudio()
	resetInput()
}

// KillLine is the y coordinate below which actors are removed.
func KillLine() float64 {
	return float64(C.Height) + Level.KillMargin
}
