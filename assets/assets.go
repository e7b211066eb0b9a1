package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

//go:embed all:levels
var assetFS embed.FS

// ErrUnknownTag is returned by the tiled loader for a tile whose tag is not in the vocabulary.
var ErrUnknownTag = errors.New("unknown tile tag")

// ErrLevelOverflow is returned when a level holds more tiles than its grid.
var ErrLevelOverflow = errors.New("level has more tiles than the grid")

// Tile is one placed level cell.
type Tile struct {
	Tag      string
	Col, Row int // grid position
	Kind     TileKind
}

// Level is a parsed level grid.
type Level struct {
	Name   string
	Width  int // tiles
	Height int // tiles
	Tiles  []Tile
}

// Solid returns the tiles that block movement.
func (l Level) Solid() []Tile {
	var solid []Tile
	for _, t := range l.Tiles {
		if t.Kind.Collidable {
			solid = append(solid, t)
		}
	}
	return solid
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads levels embedded in the binary.
func NewLevelLoader() *LevelLoader {
	sub, err := fs.Sub(assetFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to open levels directory: %v", err))
	}
	return &LevelLoader{fsys: sub}
}

// NewLevelLoaderFS reads levels from fsys.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// Names lists the loadable level files.
func (l *LevelLoader) Names() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch path.Ext(entry.Name()) {
		case ".txt", ".tmx":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load reads a level by file name. Text levels take their grid size from width
// and height; .tmx maps carry their own.
func (l *LevelLoader) Load(name string, width, height int) (Level, error) {
	switch path.Ext(name) {
	case ".tmx":
		return loadTiled(l.fsys, name)
	case ".txt":
		f, err := l.fsys.Open(name)
		if err != nil {
			return Level{}, fmt.Errorf("failed to open level %s: %w", name, err)
		}
		defer f.Close()

		level, err := ParseLevel(f, width, height)
		if err != nil {
			return Level{}, fmt.Errorf("failed to parse level %s: %w", name, err)
		}
		level.Name = name
		return level, nil
	}
	return Level{}, fmt.Errorf("unsupported level format %q", name)
}

// LoadLevel resolves name against the embedded levels first and the file
// system second.
func LoadLevel(name string, width, height int) (Level, error) {
	embedded := NewLevelLoader()
	if _, err := fs.Stat(embedded.fsys, name); err == nil {
		return embedded.Load(name, width, height)
	}

	dir, file := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	if _, err := os.Stat(name); err != nil {
		return Level{}, fmt.Errorf("level %s not found: %w", name, err)
	}
	return NewLevelLoaderFS(os.DirFS(dir)).Load(file, width, height)
}
