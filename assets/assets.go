package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"

	"github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

const (
	TileSheetPath      = "images/sheet.png"
	CharacterSheetPath = "images/characters.png"
	LevelsDir          = "levels"
)

// ImageSource supplies the rasters a level needs. Tiles are already scaled to
// the level's tile size.
type ImageSource interface {
	TileImage(code leveldata.Code) (*ebiten.Image, error)
	ActorFrames(kind config.ActorKind) ([]*ebiten.Image, error)
}

// LevelFS returns the embedded level files, rooted so that LevelsDir is a
// top-level directory.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevels reads every level definition from dir in fsys.
func LoadLevels(fsys fs.FS, dir string) ([]leveldata.Definition, error) {
	defs, err := leveldata.LoadDefinitions(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	return defs, nil
}

// SheetImages cuts tile and character images out of the embedded sheets and
// caches the results.
type SheetImages struct {
	fsys     fs.FS
	catalog  leveldata.Catalog
	tileSize int

	sheets map[string]image.Image
	tiles  map[leveldata.Code]*ebiten.Image
	actors map[config.ActorKind][]*ebiten.Image
}

// NewSheetImages reads sheets from the embedded image set.
func NewSheetImages(catalog leveldata.Catalog, tileSize int) *SheetImages {
	return NewSheetImagesFS(imageFS, catalog, tileSize)
}

func NewSheetImagesFS(fsys fs.FS, catalog leveldata.Catalog, tileSize int) *SheetImages {
	return &SheetImages{
		fsys:     fsys,
		catalog:  catalog,
		tileSize: tileSize,
		sheets:   make(map[string]image.Image),
		tiles:    make(map[leveldata.Code]*ebiten.Image),
		actors:   make(map[config.ActorKind][]*ebiten.Image),
	}
}

func (s *SheetImages) TileImage(code leveldata.Code) (*ebiten.Image, error) {
	if img, ok := s.tiles[code]; ok {
		return img, nil
	}

	def, ok := s.catalog.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("no tile image for code %q", code)
	}
	sheet, err := s.sheet(TileSheetPath)
	if err != nil {
		return nil, err
	}

	tile := CutTile(sheet, def.Sheet, config.TileSheet, s.tileSize)
	img := ebiten.NewImageFromImage(tile)
	s.tiles[code] = img
	return img, nil
}

func (s *SheetImages) ActorFrames(kind config.ActorKind) ([]*ebiten.Image, error) {
	if frames, ok := s.actors[kind]; ok {
		return frames, nil
	}

	row, ok := config.CharacterSheet.Rows[kind]
	if !ok {
		return nil, fmt.Errorf("no sheet row for %s", kind)
	}
	sheet, err := s.sheet(CharacterSheetPath)
	if err != nil {
		return nil, err
	}

	w, h := config.Player.FrameWidth, config.Player.FrameHeight
	if kind == config.ActorEnemy {
		w, h = config.Enemy.FrameWidth, config.Enemy.FrameHeight
	}

	cut := CutFrames(sheet, config.CharacterSheet, row, w, h)
	frames := make([]*ebiten.Image, len(cut))
	for i, f := range cut {
		frames[i] = ebiten.NewImageFromImage(f)
	}
	s.actors[kind] = frames
	return frames, nil
}

func (s *SheetImages) sheet(path string) (image.Image, error) {
	if img, ok := s.sheets[path]; ok {
		return img, nil
	}
	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	s.sheets[path] = img
	return img, nil
}

// CutTile copies one cell of the tile sheet, makes white pixels transparent and
// scales the result to size x size.
func CutTile(sheet image.Image, cell leveldata.SheetCell, layout config.TileSheetConfig, size int) *image.NRGBA {
	x := layout.OriginX + cell.Col*layout.CellSize
	y := layout.OriginY + cell.Row*layout.CellSize
	src := image.Rect(x, y, x+layout.CellSize, y+layout.CellSize).Add(sheet.Bounds().Min)

	keyed := applyColorKey(sheet, src, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	if size == layout.CellSize {
		return keyed
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), keyed, keyed.Bounds(), draw.Src, nil)
	return dst
}

// CutFrames copies a run of character frames. Frames sit XMargin pixels in and
// are XPadding pixels apart; the colorkey is the sheet's top-left pixel.
func CutFrames(sheet image.Image, layout config.CharacterSheetConfig, row config.SheetRow, w, h int) []*image.NRGBA {
	origin := sheet.Bounds().Min
	key := sheet.At(origin.X, origin.Y)

	frames := make([]*image.NRGBA, 0, row.FrameCount)
	for col := 0; col < row.FrameCount; col++ {
		x := layout.XMargin + col*(w+layout.XPadding)
		src := image.Rect(x, row.Y, x+w, row.Y+h).Add(origin)
		frames = append(frames, applyColorKey(sheet, src, key))
	}
	return frames
}

func applyColorKey(sheet image.Image, src image.Rectangle, key color.Color) *image.NRGBA {
	kr, kg, kb, _ := key.RGBA()
	out := image.NewNRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
	for y := 0; y < src.Dy(); y++ {
		for x := 0; x < src.Dx(); x++ {
			c := sheet.At(src.Min.X+x, src.Min.Y+y)
			r, g, b, _ := c.RGBA()
			if r == kr && g == kg && b == kb {
				continue
			}
			out.Set(x, y, c)
		}
	}
	return out
}
