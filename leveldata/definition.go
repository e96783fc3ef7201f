package leveldata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultTileSize is used when a level file does not set one.
const DefaultTileSize = 75

// Definition is a level as stored on disk.
type Definition struct {
	Name      string   `yaml:"name"`
	TileSize  int      `yaml:"tile_size"`
	JumpSound *bool    `yaml:"jump_sound,omitempty"`
	Layout    []string `yaml:"layout"`

	// Source is the file the definition was read from.
	Source string `yaml:"-"`
}

// JumpSoundEnabled reports whether jumps on this level make a sound.
func (d Definition) JumpSoundEnabled() bool {
	return d.JumpSound == nil || *d.JumpSound
}

// Build places the definition's layout with catalog.
func (d Definition) Build(catalog Catalog) (*Grid, error) {
	id := d.Name
	if id == "" {
		id = d.Source
	}
	return Build(d.Layout, d.TileSize, id, catalog)
}

// DecodeDefinition reads a YAML level. Unknown keys are rejected.
func DecodeDefinition(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode level: %w", ErrEmptyLayout)
		}
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if def.TileSize == 0 {
		def.TileSize = DefaultTileSize
	}
	if len(def.Layout) == 0 {
		return nil, fmt.Errorf("decode level %q: %w", def.Name, ErrEmptyLayout)
	}
	return &def, nil
}

// EncodeDefinition writes def as YAML.
func EncodeDefinition(w io.Writer, def Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return fmt.Errorf("encode level %q: %w", def.Name, err)
	}
	return enc.Close()
}

// LoadDefinition reads a single .yaml or .tmx level from fsys.
func LoadDefinition(fsys fs.FS, name string) (*Definition, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		return LoadTMX(fsys, name)
	case ".yaml", ".yml":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read level %s: %w", name, err)
		}
		def, err := DecodeDefinition(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		def.Source = name
		if def.Name == "" {
			def.Name = stem(name)
		}
		return def, nil
	}
	return nil, fmt.Errorf("unsupported level format: %s", name)
}

// LoadDefinitions loads every level in dir, ordered by file name.
func LoadDefinitions(fsys fs.FS, dir string) ([]Definition, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read levels directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(entry.Name())) {
		case ".yaml", ".yml", ".tmx":
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	sort.Strings(names)

	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		def, err := LoadDefinition(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		defs = append(defs, *def)
	}
	return defs, nil
}

func stem(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}
