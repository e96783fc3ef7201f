package components

import (
	"github.com/automoto/tilerunner/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()

type GroundedState struct{}
type FallingState struct{}
type JumpingState struct{}

var Grounded = donburi.NewComponentType[GroundedState]()
var Falling = donburi.NewComponentType[FallingState]()
var Jumping = donburi.NewComponentType[JumpingState]()
