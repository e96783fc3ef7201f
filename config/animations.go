package config

// ActorKind selects a row of the character sheet.
type ActorKind int

const (
	ActorPlayer ActorKind = iota
	ActorEnemy
)

func (k ActorKind) String() string {
	if k == ActorEnemy {
		return "enemy"
	}
	return "player"
}

// SheetRow describes where an actor's frames sit in the character sheet.
type SheetRow struct {
	Y          int
	FrameCount int
}

// CharacterSheetConfig is the layout of images/characters.png.
type CharacterSheetConfig struct {
	Columns  int
	XMargin  int
	XPadding int
	Rows     map[ActorKind]SheetRow
}

// TileSheetConfig is the layout of images/sheet.png.
type TileSheetConfig struct {
	OriginX  int
	OriginY  int
	CellSize int
}

var CharacterSheet CharacterSheetConfig
var TileSheet TileSheetConfig

func init() {
	CharacterSheet = CharacterSheetConfig{
		Columns:  23,
		XMargin:  5,
		XPadding: 12,
		Rows: map[ActorKind]SheetRow{
			ActorPlayer: {Y: 69, FrameCount: 5},
			ActorEnemy:  {Y: 101, FrameCount: 4},
		},
	}

	TileSheet = TileSheetConfig{
		OriginX:  112,
		OriginY:  0,
		CellSize: 16,
	}
}
