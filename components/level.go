package components

import (
	"github.com/automoto/tilerunner/assets"
	"github.com/automoto/tilerunner/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Definition leveldata.Definition
	Grid       *leveldata.Grid
	LevelIndex int
	LevelCount int
	JumpSound  bool

	// Images supplies rasters for entities spawned after the level is built.
	Images assets.ImageSource
}

var Level = donburi.NewComponentType[LevelData]()
