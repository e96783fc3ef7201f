package systems

import (
	"fmt"

	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level name and number in the top-right corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	face := fonts.HUD.Get()
	label := fmt.Sprintf("%s  %d/%d", level.Definition.Name, level.LevelIndex+1, level.LevelCount)
	bounds := text.BoundString(face, label)

	margin := int(cfg.UI.HUDMargin)
	x := screen.Bounds().Dx() - bounds.Dx() - margin
	y := margin - bounds.Min.Y
	text.Draw(screen, label, face, x, y, cfg.UI.HUDTextColor)
}
