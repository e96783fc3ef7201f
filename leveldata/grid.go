package leveldata

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Delimiter separates cells within a layout row.
const Delimiter = ","

var (
	ErrEmptyLayout     = errors.New("layout has no rows")
	ErrRaggedRow       = errors.New("ragged layout row")
	ErrBadCell         = errors.New("layout cell must be a single character")
	ErrNoPlayer        = errors.New("layout has no player spawn")
	ErrMultiplePlayers = errors.New("layout has more than one player spawn")
	ErrBadTileSize     = errors.New("tile size must be positive")
)

// Grid is a parsed layout with its tiles placed in world space. Set membership
// is fixed after Build; only tile positions change later, owned by the caller.
type Grid struct {
	ID       string
	Rows     int
	Cols     int
	TileSize int
	Cells    [][]Code

	Solid      []Tile
	Background []Tile // includes goal tiles
	Goal       []Tile

	Player  Spawn
	Enemies []Spawn
}

// Parse splits each row on Delimiter into codes. All rows must have the same
// number of cells.
func Parse(layout []string) ([][]Code, error) {
	if len(layout) == 0 {
		return nil, ErrEmptyLayout
	}

	cells := make([][]Code, len(layout))
	for row, line := range layout {
		parts := strings.Split(line, Delimiter)
		if row > 0 && len(parts) != len(cells[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, row, len(parts), len(cells[0]))
		}

		cells[row] = make([]Code, len(parts))
		for col, part := range parts {
			part = strings.TrimSpace(part)
			if utf8.RuneCountInString(part) != 1 {
				return nil, fmt.Errorf("%w: row %d col %d is %q", ErrBadCell, row, col, part)
			}
			r, _ := utf8.DecodeRuneInString(part)
			cells[row][col] = Code(r)
		}
	}
	return cells, nil
}

// CellOrigin returns the world position of a grid cell. Columns are spaced at
// half the tile size, rows at the full tile size.
func CellOrigin(row, col, tileSize int) (x, y float64) {
	return float64(col * tileSize / 2), float64(row * tileSize)
}

// Build parses layout and places every cell according to catalog.
func Build(layout []string, tileSize int, id string, catalog Catalog) (*Grid, error) {
	if tileSize <= 0 {
		return nil, ErrBadTileSize
	}

	cells, err := Parse(layout)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", id, err)
	}

	g := &Grid{
		ID:       id,
		Rows:     len(cells),
		Cols:     len(cells[0]),
		TileSize: tileSize,
		Cells:    cells,
	}

	size := float64(tileSize)
	hasPlayer := false
	for row, line := range cells {
		for col, code := range line {
			x, y := CellOrigin(row, col, tileSize)
			class := catalog.Classify(code)
			tile := Tile{Code: code, Class: class, Row: row, Col: col, X: x, Y: y, W: size, H: size}

			switch class {
			case Solid:
				g.Solid = append(g.Solid, tile)
			case Background:
				g.Background = append(g.Background, tile)
			case Goal:
				g.Background = append(g.Background, tile)
				g.Goal = append(g.Goal, tile)
			case PlayerSpawn:
				if hasPlayer {
					return nil, fmt.Errorf("level %s: %w: row %d col %d", id, ErrMultiplePlayers, row, col)
				}
				hasPlayer = true
				g.Player = Spawn{Row: row, Col: col, X: x, Y: y}
			case EnemySpawn:
				g.Enemies = append(g.Enemies, Spawn{Row: row, Col: col, X: x, Y: y})
			}
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("level %s: %w", id, ErrNoPlayer)
	}
	return g, nil
}

// Width is the pixel extent of the grid, including the last tile's overhang.
func (g *Grid) Width() int {
	if g.Cols == 0 {
		return 0
	}
	return (g.Cols-1)*g.TileSize/2 + g.TileSize
}

// Height is the pixel extent of the grid.
func (g *Grid) Height() int {
	return g.Rows * g.TileSize
}

// Count returns how many cells classify to class.
func (g *Grid) Count(catalog Catalog, class Class) int {
	n := 0
	for _, line := range g.Cells {
		for _, code := range line {
			if catalog.Classify(code) == class {
				n++
			}
		}
	}
	return n
}

// FormatLayout renders cells back into layout rows.
func FormatLayout(cells [][]Code) []string {
	rows := make([]string, len(cells))
	for i, line := range cells {
		parts := make([]string, len(line))
		for j, code := range line {
			parts[j] = code.String()
		}
		rows[i] = strings.Join(parts, Delimiter)
	}
	return rows
}
