package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/fonts"
	"github.com/automoto/tilerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDebug returns the singleton Debug component, creating if needed
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	if _, ok := components.Debug.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(ent, components.DebugData{
			ShowColliders: cfg.Debug.ShowColliders,
		})
	}
	ent, _ := components.Debug.First(e.World)
	return components.Debug.Get(ent)
}

// UpdateDebug toggles the collider overlay.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionDebug).JustPressed {
		debug := GetOrCreateDebug(e)
		debug.ShowColliders = !debug.ShowColliders
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).ShowColliders {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		if obj.X+obj.W < 0 || obj.X > width || obj.Y+obj.H < 0 || obj.Y > height {
			continue
		}

		// Determine color based on tags
		var c color.Color
		switch {
		case obj.HasTags(tags.ResolvGoal):
			c = cfg.UI.GoalDebugColor
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255} // Grey
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255} // Blue
		case obj.HasTags(tags.ResolvEnemy):
			c = cfg.UI.DebugColor
		default:
			continue
		}

		x, y := float32(obj.X), float32(obj.Y)
		vector.FillRect(screen, x, y, float32(obj.W), 1, c, false)                  // Top
		vector.FillRect(screen, x, y+float32(obj.H)-1, float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, float32(obj.H), c, false)                  // Left
		vector.FillRect(screen, x+float32(obj.W)-1, y, 1, float32(obj.H), c, false) // Right
	}

	drawDebugText(ecs, screen)
}

func drawDebugText(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Debug) {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	state := components.State.Get(playerEntry)

	offset := 0.0
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		offset = components.Camera.Get(cameraEntry).Offset
	}

	enemies := 0
	tags.Enemy.Each(ecs.World, func(*donburi.Entry) { enemies++ })

	msg := fmt.Sprintf("x=%.1f y=%.1f %s scroll=%.0f enemies=%d", obj.X, obj.Y, state.CurrentState, offset, enemies)
	margin := int(cfg.UI.HUDMargin)
	text.Draw(screen, msg, fonts.Debug.Get(), margin, screen.Bounds().Dy()-margin, cfg.UI.DebugColor)
}
