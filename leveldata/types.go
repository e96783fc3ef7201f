// Package leveldata parses textual tile layouts into positioned tiles and spawn
// points. It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

// Code is a single layout character identifying a tile kind.
type Code rune

// EmptyCode is written for cells that hold nothing.
const EmptyCode Code = '0'

func (c Code) String() string {
	return string(rune(c))
}

// Class is the behavioral bucket a tile code falls into.
type Class int

const (
	Empty Class = iota
	Solid
	Background
	Goal
	PlayerSpawn
	EnemySpawn
)

func (c Class) String() string {
	switch c {
	case Solid:
		return "solid"
	case Background:
		return "background"
	case Goal:
		return "goal"
	case PlayerSpawn:
		return "player-spawn"
	case EnemySpawn:
		return "enemy-spawn"
	}
	return "empty"
}

// SheetCell addresses a 16x16 cell of the tile sheet, relative to the tile block.
type SheetCell struct {
	Col int
	Row int
}

// TileDef describes one entry of the tile catalog.
type TileDef struct {
	Code  Code
	Class Class
	Name  string
	Sheet SheetCell
}

// Tile is a placed tile in world space.
type Tile struct {
	Code  Code
	Class Class
	Row   int
	Col   int
	X, Y  float64
	W, H  float64
}

// Spawn is an actor spawn location in world space.
type Spawn struct {
	Row  int
	Col  int
	X, Y float64
}
