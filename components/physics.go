package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData holds an actor's per-frame motion. SpeedX/SpeedY are the
// intended velocity; MoveX/MoveY are what was actually applied this frame after
// collision resolution.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
	MoveX  float64
	MoveY  float64

	Jumping       bool
	Falling       bool
	JumpCounter   float64
	JumpIncrement float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
