package components

import (
	"github.com/automoto/tilerunner/leveldata"
	"github.com/yohamta/donburi"
)

type TileData struct {
	Code  leveldata.Code
	Class leveldata.Class
	Row   int
	Col   int
}

var Tile = donburi.NewComponentType[TileData]()
