package leveldata

import (
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/lafriks/go-tiled"
)

// LayoutLayer is the tile layer read from Tiled maps.
const LayoutLayer = "layout"

// LoadTMX imports a Tiled map. Each tile of the layout layer carries its code
// in the tileset property "code"; nil tiles become EmptyCode. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Definition, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	def := &Definition{
		Name:     stem(tmxPath),
		TileSize: DefaultTileSize,
		Source:   tmxPath,
	}
	if levelMap.Properties != nil {
		if name := levelMap.Properties.GetString("name"); name != "" {
			def.Name = name
		}
		if size := levelMap.Properties.GetInt("tile_size"); size > 0 {
			def.TileSize = size
		}
		if levelMap.Properties.GetString("jump_sound") == "false" {
			off := false
			def.JumpSound = &off
		}
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != LayoutLayer {
			continue
		}
		rows := make([]string, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			cells := make([]string, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				code, err := tileCode(layer.Tiles[y*levelMap.Width+x])
				if err != nil {
					return nil, fmt.Errorf("%s: row %d col %d: %w", tmxPath, y, x, err)
				}
				cells[x] = code.String()
			}
			rows[y] = strings.Join(cells, Delimiter)
		}
		def.Layout = rows
		break
	}

	if len(def.Layout) == 0 {
		return nil, fmt.Errorf("%s: no %q tile layer: %w", tmxPath, LayoutLayer, ErrEmptyLayout)
	}
	return def, nil
}

func tileCode(tile *tiled.LayerTile) (Code, error) {
	if tile == nil || tile.IsNil() {
		return EmptyCode, nil
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return EmptyCode, err
	}
	value := tilesetTile.Properties.GetString("code")
	if utf8.RuneCountInString(value) != 1 {
		return EmptyCode, fmt.Errorf("%w: tile %d has code %q", ErrBadCell, tile.ID, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return Code(r), nil
}
