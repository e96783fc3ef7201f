package components

import "github.com/yohamta/donburi"

// CameraData records the world shift. Scroll is this frame's horizontal shift
// and Offset the total since the level started.
type CameraData struct {
	Scroll float64
	Offset float64
}

var Camera = donburi.NewComponentType[CameraData]()
