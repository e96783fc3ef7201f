package systems

import (
	"github.com/automoto/tilerunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every collider in the spatial hash after this
// frame's moves and scrolls.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if obj := components.Object.Get(e); obj.Object != nil {
			obj.Update()
		}
	})
}
