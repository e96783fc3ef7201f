package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Solid      = donburi.NewTag().SetName("Solid")
	Background = donburi.NewTag().SetName("Background")
	Goal       = donburi.NewTag().SetName("Goal")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvBackground = "background"
	ResolvGoal       = "goal"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
)
