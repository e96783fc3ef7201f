package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Direction Vector
}

var Player = donburi.NewComponentType[PlayerData]()
