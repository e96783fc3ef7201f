package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the time source for frame-cadence animation.
type ClockData struct {
	Now func() time.Time
}

var Clock = donburi.NewComponentType[ClockData]()
