package components

import "github.com/yohamta/donburi"

// DeathCause records why the player died.
type DeathCause int

const (
	DeathByEnemy DeathCause = iota + 1
	DeathByFall
)

func (c DeathCause) String() string {
	switch c {
	case DeathByEnemy:
		return "enemy"
	case DeathByFall:
		return "fall"
	}
	return "unknown"
}

// DeathData marks a player that was killed this frame. The scene restarts the
// level when it sees it.
type DeathData struct {
	Cause DeathCause
}

var Death = donburi.NewComponentType[DeathData]()
