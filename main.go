// tilerunner is a side-scrolling tile platformer.
//
// Usage:
//
//	tilerunner                      - Play the bundled levels
//	tilerunner --levels-dir ./lv    - Play the levels in a directory
//	tilerunner --levels-dir ./lv --watch
//	                                - Reload levels when a file changes
//
// Flags:
//
//	--config <path>  - YAML file overriding the built-in settings
//	--level <name>   - Start on the named level (or its 1-based number)
//	--debug          - Verbose logging and collider outlines
//	--mute           - Start with sound effects muted
//	--fresh          - Ignore saved progress
package main

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/automoto/tilerunner/assets"
	"github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/fonts"
	"github.com/automoto/tilerunner/leveldata"
	"github.com/automoto/tilerunner/scenes"
	"github.com/automoto/tilerunner/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagLevel     string
	flagLevelsDir string
	flagWatch     bool
	flagDebug     bool
	flagMute      bool
	flagFresh     bool
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "tilerunner",
	Short: "A side-scrolling tile platformer",
	Long: `Run right, jump over gaps, avoid the enemies and touch the goal tile
to reach the next level.

Controls:
  Left/Right - Move
  Space      - Jump
  F1         - Toggle collider outlines`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a settings YAML file")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level name or 1-based number to start on")
	rootCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of level files (default: bundled levels)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when files in --levels-dir change")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and collider outlines")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Mute sound effects")
	rootCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Start from the first level, ignoring saved progress")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}

	if flagConfig != "" {
		if err := config.LoadFile(flagConfig); err != nil {
			return err
		}
	}
	if flagDebug {
		config.Debug.ShowColliders = true
	}
	if flagMute {
		config.Audio.Muted = true
	}
	if flagWatch && flagLevelsDir == "" {
		return fmt.Errorf("--watch needs --levels-dir")
	}

	fsys, dir := assets.LevelFS(), assets.LevelsDir
	if flagLevelsDir != "" {
		fsys, dir = os.DirFS(flagLevelsDir), "."
	}
	loadLevels := func() ([]leveldata.Definition, error) {
		return assets.LoadLevels(fsys, dir)
	}
	levels, err := loadLevels()
	if err != nil {
		return err
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		return err
	}

	if err := systems.InitPersistence("tilerunner"); err != nil {
		log.Warn("continuing without saved data", "err", err)
	}
	saved, _ := systems.LoadSettings()
	if saved != nil {
		saved.Muted = saved.Muted || flagMute
		saved.ShowColliders = saved.ShowColliders || flagDebug
	}

	start, err := startLevel(levels, flagLevel)
	if err != nil {
		return err
	}

	opts := scenes.Options{
		Levels:     levels,
		StartLevel: start,
		Images: func(tileSize int) assets.ImageSource {
			catalog, _ := leveldata.NewCatalog(leveldata.DefaultEntries)
			return assets.NewSheetImages(catalog, tileSize)
		},
		Audio:    systems.NewAudioSink(),
		Settings: saved,
	}

	if flagWatch {
		watcher, err := assets.NewLevelWatcher(flagLevelsDir)
		if err != nil {
			return err
		}
		defer watcher.Close()
		opts.Watcher = watcher
		opts.Reload = loadLevels
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	g := &Game{}
	g.scene = scenes.NewPlatformerScene(g, opts)

	log.Info("starting", "levels", len(levels), "start", levels[start].Name)
	return ebiten.RunGame(g)
}

// startLevel resolves the --level flag against the loaded levels. Without it
// the saved progress picks the level.
func startLevel(levels []leveldata.Definition, want string) (int, error) {
	if want == "" {
		if flagFresh {
			return 0, nil
		}
		return systems.ProgressLevel(len(levels)), nil
	}
	for i, def := range levels {
		if def.Name == want {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(want); err == nil && n >= 1 && n <= len(levels) {
		return n - 1, nil
	}
	return 0, fmt.Errorf("unknown level %q: %w", want, fs.ErrNotExist)
}
