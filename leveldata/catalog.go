package leveldata

import "sort"

// Catalog maps tile codes to their definitions.
type Catalog struct {
	defs map[Code]TileDef
}

// NewCatalog builds a catalog from defs. When a code is listed more than once
// the first definition wins; the shadowed codes are returned in input order.
func NewCatalog(defs []TileDef) (Catalog, []Code) {
	c := Catalog{defs: make(map[Code]TileDef, len(defs))}
	var shadowed []Code
	for _, d := range defs {
		if _, dup := c.defs[d.Code]; dup {
			shadowed = append(shadowed, d.Code)
			continue
		}
		c.defs[d.Code] = d
	}
	return c, shadowed
}

// Classify returns the class for code. Unknown codes are Empty.
func (c Catalog) Classify(code Code) Class {
	if d, ok := c.defs[code]; ok {
		return d.Class
	}
	return Empty
}

// Lookup returns the definition for code.
func (c Catalog) Lookup(code Code) (TileDef, bool) {
	d, ok := c.defs[code]
	return d, ok
}

// Codes returns every known code in ascending order.
func (c Catalog) Codes() []Code {
	codes := make([]Code, 0, len(c.defs))
	for code := range c.defs {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// DefaultEntries is the stock tile table in declaration order. The pillar-top
// rows reuse the codes of the rock edge rows and are shadowed by them.
var DefaultEntries = []TileDef{
	{Code: '1', Class: Solid, Name: "rock_green1", Sheet: SheetCell{0, 0}},
	{Code: '2', Class: Solid, Name: "rock_green2", Sheet: SheetCell{1, 0}},
	{Code: '3', Class: Solid, Name: "rock_green3", Sheet: SheetCell{2, 0}},
	{Code: 'L', Class: Solid, Name: "rock_green_left", Sheet: SheetCell{1, 1}},
	{Code: 'R', Class: Solid, Name: "rock_green_right", Sheet: SheetCell{2, 1}},
	{Code: '4', Class: Solid, Name: "grey_rock_green1", Sheet: SheetCell{0, 2}},
	{Code: '5', Class: Solid, Name: "grey_rock_green2", Sheet: SheetCell{1, 2}},
	{Code: '6', Class: Solid, Name: "grey_rock_green3", Sheet: SheetCell{2, 2}},
	{Code: 'l', Class: Solid, Name: "grey_rock_green_left", Sheet: SheetCell{1, 3}},
	{Code: 'r', Class: Solid, Name: "grey_rock_green_right", Sheet: SheetCell{2, 3}},
	{Code: 'U', Class: Solid, Name: "rocky", Sheet: SheetCell{0, 1}},
	{Code: 'u', Class: Solid, Name: "grey_rocky", Sheet: SheetCell{0, 3}},
	{Code: 'N', Class: Solid, Name: "rock_lwall", Sheet: SheetCell{3, 1}},
	{Code: 'M', Class: Solid, Name: "rock_rwall", Sheet: SheetCell{5, 1}},
	{Code: 'A', Class: Solid, Name: "rock_left", Sheet: SheetCell{3, 0}},
	{Code: 'D', Class: Solid, Name: "rock_right", Sheet: SheetCell{5, 0}},
	{Code: 'n', Class: Background, Name: "grey_rock_lwall", Sheet: SheetCell{3, 3}},
	{Code: 'm', Class: Background, Name: "grey_rock_rwall", Sheet: SheetCell{5, 3}},
	{Code: 'a', Class: Solid, Name: "grey_rock_left", Sheet: SheetCell{3, 2}},
	{Code: 'd', Class: Solid, Name: "grey_rock_right", Sheet: SheetCell{5, 2}},
	{Code: 'F', Class: Solid, Name: "rock_floor", Sheet: SheetCell{4, 0}},
	{Code: 'f', Class: Solid, Name: "grey_rock_floor", Sheet: SheetCell{4, 2}},
	{Code: '-', Class: Background, Name: "inside", Sheet: SheetCell{4, 1}},
	{Code: 'A', Class: Solid, Name: "rock_pillar_top", Sheet: SheetCell{6, 0}},
	{Code: 'I', Class: Solid, Name: "rock_pillar", Sheet: SheetCell{6, 1}},
	{Code: 'a', Class: Solid, Name: "grey_rock_pillar_top", Sheet: SheetCell{6, 2}},
	{Code: 'i', Class: Solid, Name: "grey_rock_pillar", Sheet: SheetCell{6, 3}},
	{Code: '7', Class: Goal, Name: "grass_ltop", Sheet: SheetCell{4, 4}},
	{Code: 'y', Class: Goal, Name: "grass_l", Sheet: SheetCell{4, 5}},
	{Code: 'j', Class: Goal, Name: "grass_lbot", Sheet: SheetCell{4, 6}},
	{Code: '8', Class: Goal, Name: "grass_top", Sheet: SheetCell{5, 4}},
	{Code: '=', Class: Goal, Name: "grass_mid", Sheet: SheetCell{5, 5}},
	{Code: 'k', Class: Goal, Name: "grass_bot", Sheet: SheetCell{5, 6}},
	{Code: '9', Class: Goal, Name: "grass_rtop", Sheet: SheetCell{4, 4}},
	{Code: 'o', Class: Goal, Name: "grass_r", Sheet: SheetCell{4, 5}},
	{Code: ';', Class: Goal, Name: "grass_r", Sheet: SheetCell{4, 5}},
	{Code: 'p', Class: PlayerSpawn, Name: "player"},
	{Code: 'x', Class: EnemySpawn, Name: "enemy"},
	{Code: EmptyCode, Class: Empty, Name: "empty"},
}

// DefaultCatalog returns the stock catalog built from DefaultEntries.
func DefaultCatalog() Catalog {
	c, _ := NewCatalog(DefaultEntries)
	return c
}
