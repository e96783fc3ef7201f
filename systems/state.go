package systems

import (
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives each actor's movement state from its physics flags and
// keeps the matching state tag attached.
func UpdateStates(ecs *ecs.ECS) {
	var changed []*donburi.Entry
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Physics) {
			return
		}
		state := components.State.Get(e)
		state.CurrentState = stateFromPhysics(components.Physics.Get(e))
		if state.CurrentState == state.PreviousState {
			state.StateTimer++
			return
		}
		changed = append(changed, e)
	})

	// Tags change the entry's archetype, so they are applied after iterating.
	for _, e := range changed {
		updateStateTags(e, components.State.Get(e))
	}
}

func stateFromPhysics(physics *components.PhysicsData) cfg.StateID {
	switch {
	case physics.Jumping:
		return cfg.Jumping
	case physics.Falling:
		return cfg.Falling
	}
	return cfg.Grounded
}

func updateStateTags(e *donburi.Entry, state *components.StateData) {
	removeAllStateTags(e)

	switch state.CurrentState {
	case cfg.Grounded:
		donburi.Add(e, components.Grounded, &components.GroundedState{})
	case cfg.Falling:
		donburi.Add(e, components.Falling, &components.FallingState{})
	case cfg.Jumping:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	}

	state.PreviousState = state.CurrentState
	state.StateTimer = 0
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.GroundedState](e, components.Grounded)
	donburi.Remove[components.FallingState](e, components.Falling)
	donburi.Remove[components.JumpingState](e, components.Jumping)
}
