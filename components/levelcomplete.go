package components

import "github.com/yohamta/donburi"

// LevelCompleteData tracks goal contact. Touching is the overlap seen on the
// previous check so completion fires once per contact.
type LevelCompleteData struct {
	IsComplete bool
	Touching   bool
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
