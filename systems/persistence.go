package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume     float64 `json:"sfxVolume"`
	Muted         bool    `json:"muted"`
	ShowColliders bool    `json:"showColliders"`
}

// SavedGameProgress is the level the player last reached.
type SavedGameProgress struct {
	LevelIndex int    `json:"levelIndex"`
	LevelName  string `json:"levelName"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Warn("could not load saved data", "key", key, "err", err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Warn("could not parse saved data", "key", key, "err", err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("could not serialize data", "key", key, "err", err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Warn("could not save data", "key", key, "err", err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when none are saved.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadItem("settings", &settings)
	if !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// CurrentSettings snapshots the world's audio and debug settings.
func CurrentSettings(e *ecs.ECS) *SavedSettings {
	audio := GetOrCreateAudio(e)
	return &SavedSettings{
		SFXVolume:     audio.SFXVolume,
		Muted:         audio.Muted,
		ShowColliders: GetOrCreateDebug(e).ShowColliders,
	}
}

// ApplySavedSettings applies loaded settings to the game systems
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetSFXVolume(e, saved.SFXVolume)
	GetOrCreateAudio(e).Muted = saved.Muted
	GetOrCreateDebug(e).ShowColliders = saved.ShowColliders
}

// LoadGameProgress returns the saved progress, or nil when none exists.
func LoadGameProgress() (*SavedGameProgress, error) {
	var progress SavedGameProgress
	ok, err := loadItem("progress", &progress)
	if !ok {
		return nil, err
	}
	return &progress, nil
}

// SaveGameProgress records the level the player is about to play.
func SaveGameProgress(levelIndex int, levelName string) error {
	return saveItem("progress", &SavedGameProgress{
		LevelIndex: levelIndex,
		LevelName:  levelName,
	})
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	progress, _ := LoadGameProgress()
	return progress != nil
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	if err := gdataManager.SaveItem("progress", nil); err != nil {
		log.Warn("could not clear game progress", "err", err)
		return err
	}
	return nil
}

// ProgressLevel returns the saved level index when it is valid for count
// levels, otherwise 0.
func ProgressLevel(count int) int {
	progress, _ := LoadGameProgress()
	if progress == nil || progress.LevelIndex < 0 || progress.LevelIndex >= count {
		return 0
	}
	return progress.LevelIndex
}
