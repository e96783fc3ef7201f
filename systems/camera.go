package systems

import (
	"github.com/automoto/tilerunner/components"
	"github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player inside the horizontal dead-zone by shifting
// the world instead of the player. It must run after the actors have moved.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Scroll = 0

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry).Object
	physics := components.Physics.Get(playerEntry)
	input := getOrCreateInput(e)

	scroll := cameraScroll(input, obj, physics)
	if scroll == 0 {
		return
	}

	// Second pass: the world may not slide a wall into the player.
	if len(solidsNear(e.World, obj, -scroll, 0)) > 0 {
		return
	}

	shift := func(entry *donburi.Entry) {
		components.Object.Get(entry).X += scroll
	}
	tags.Solid.Each(e.World, shift)
	tags.Background.Each(e.World, shift)
	tags.Enemy.Each(e.World, shift)

	camera.Scroll = scroll
	camera.Offset += scroll
}

// cameraScroll decides this frame's world shift. When the player crosses a
// dead-zone edge its own move is undone and the world moves instead.
func cameraScroll(input *components.InputData, obj *resolv.Object, physics *components.PhysicsData) float64 {
	right := GetAction(input, config.ActionMoveRight).Pressed
	left := GetAction(input, config.ActionMoveLeft).Pressed
	if !right && !left {
		return 0
	}
	if physics.MoveX == 0 {
		return 0
	}

	pre := obj.X - physics.MoveX
	low := config.Camera.Margin
	high := float64(config.C.Width) - config.Camera.Margin
	if pre > low && pre < high {
		return 0
	}

	switch {
	case pre >= high && physics.MoveX > 0:
		return undoMove(obj, physics, -config.Camera.Speed)
	case pre <= low && physics.MoveX < 0:
		return undoMove(obj, physics, config.Camera.Speed)
	}
	return 0
}

func undoMove(obj *resolv.Object, physics *components.PhysicsData, scroll float64) float64 {
	obj.X -= physics.MoveX
	physics.MoveX = 0
	physics.SpeedX = 0
	return scroll
}
