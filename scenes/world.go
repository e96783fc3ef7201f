package scenes

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/automoto/tilerunner/assets"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/leveldata"
	"github.com/automoto/tilerunner/systems"
	"github.com/automoto/tilerunner/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoLevels = errors.New("no levels to play")

// Options wires a PlatformerScene to its levels and devices.
type Options struct {
	Levels     []leveldata.Definition
	StartLevel int

	// Images returns the rasters for levels of the given tile size. Nil runs
	// without graphics.
	Images func(tileSize int) assets.ImageSource
	Audio  assets.AudioSink
	Input  systems.InputPoller
	Now    func() time.Time

	// Reload re-reads the level set. It is called when Watcher reports a
	// change.
	Reload  func() ([]leveldata.Definition, error)
	Watcher *assets.LevelWatcher

	Settings *systems.SavedSettings
}

// PlatformerScene plays the level set in order. Each level runs in a fresh
// world; dying restarts the level and reaching a goal fades to the next one.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	levelIndex   int
	images       map[int]assets.ImageSource
	settings     *systems.SavedSettings
	advancing    bool
	err          error
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, opts Options) *PlatformerScene {
	if opts.Input == nil {
		opts.Input = systems.InputPollerFunc(systems.PollKeyboard)
	}
	return &PlatformerScene{
		sceneChanger: sc,
		opts:         opts,
		images:       make(map[int]assets.ImageSource),
		settings:     opts.Settings,
	}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}

	if ps.opts.Watcher != nil && ps.opts.Watcher.Changed() {
		if err := ps.reload(); err != nil {
			log.Error("level reload failed", "err", err)
		}
	}

	ps.ecs.Update()

	switch {
	case systems.IsPlayerDead(ps.ecs):
		log.Info("restarting level", "level", ps.levelIndex)
		return ps.loadLevel(ps.levelIndex)
	case systems.IsLevelComplete(ps.ecs):
		return ps.advance()
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// World exposes the running world.
func (ps *PlatformerScene) World() *ecs.ECS {
	ps.once.Do(ps.configure)
	return ps.ecs
}

// LevelIndex is the index of the level being played.
func (ps *PlatformerScene) LevelIndex() int {
	return ps.levelIndex
}

// Err returns the error that stopped the scene, if any.
func (ps *PlatformerScene) Err() error {
	ps.once.Do(ps.configure)
	return ps.err
}

func (ps *PlatformerScene) configure() {
	if len(ps.opts.Levels) == 0 {
		ps.err = ErrNoLevels
		return
	}
	start := ps.opts.StartLevel
	if start < 0 || start >= len(ps.opts.Levels) {
		start = 0
	}
	ps.err = ps.loadLevel(start)
}

// advance fades out, saves progress and moves to the next level, wrapping
// after the last one.
func (ps *PlatformerScene) advance() error {
	next := (ps.levelIndex + 1) % len(ps.opts.Levels)
	if !ps.advancing {
		ps.advancing = true
		log.Info("level complete", "level", ps.levelIndex, "next", next)
		_ = systems.SaveGameProgress(next, ps.opts.Levels[next].Name)
		_ = systems.SaveSettings(systems.CurrentSettings(ps.ecs))
		systems.StartFade(ps.ecs, 0, 1)
		return nil
	}
	if !systems.TransitionDone(ps.ecs) {
		return nil
	}

	ps.advancing = false
	if err := ps.loadLevel(next); err != nil {
		return err
	}
	systems.StartFade(ps.ecs, 1, 0)
	return nil
}

func (ps *PlatformerScene) reload() error {
	if ps.opts.Reload == nil {
		return nil
	}
	levels, err := ps.opts.Reload()
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		return ErrNoLevels
	}
	ps.opts.Levels = levels
	ps.images = make(map[int]assets.ImageSource)

	index := ps.levelIndex
	if index >= len(levels) {
		index = 0
	}
	log.Info("levels reloaded", "count", len(levels))
	return ps.loadLevel(index)
}

func (ps *PlatformerScene) loadLevel(index int) error {
	if ps.ecs != nil {
		ps.settings = systems.CurrentSettings(ps.ecs)
	}

	def := ps.opts.Levels[index]
	e := ps.newECS()
	if _, err := factory.BuildLevel(e, def, index, len(ps.opts.Levels), ps.imagesFor(def.TileSize)); err != nil {
		return fmt.Errorf("load level %d: %w", index, err)
	}

	ps.ecs = e
	ps.levelIndex = index
	ps.advancing = false
	return nil
}

func (ps *PlatformerScene) imagesFor(tileSize int) assets.ImageSource {
	if ps.opts.Images == nil {
		return nil
	}
	if images, ok := ps.images[tileSize]; ok {
		return images
	}
	images := ps.opts.Images(tileSize)
	ps.images[tileSize] = images
	return images
}

func (ps *PlatformerScene) newECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	if ps.opts.Now != nil {
		factory.SetClock(e, ps.opts.Now)
	}
	systems.SetAudioSink(e, ps.opts.Audio)
	systems.ApplySavedSettings(e, ps.settings)

	e.AddSystem(systems.NewInputSystem(ps.opts.Input))

	// Actors move first, then the world scrolls around the player.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.MaintainEnemyPopulation))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateLevelChecks))
	e.AddSystem(systems.SweepDeadEnemies)
	e.AddSystem(systems.UpdateStates)
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimations))
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdateTransition)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawBackgroundTiles)
	e.AddRenderer(cfg.Default, systems.DrawSolidTiles)
	e.AddRenderer(cfg.Default, systems.DrawActors)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawTransition)

	return e
}
