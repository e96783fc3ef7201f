package components

import "github.com/yohamta/donburi"

type DebugData struct {
	ShowColliders bool
}

var Debug = donburi.NewComponentType[DebugData]()
