package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Direction Vector

	// Dead enemies stay in the world until the end-of-frame sweep.
	Dead bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
