package assets

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// tileLayer is the tmx layer holding the level grid.
const tileLayer = "tiles"

// loadTiled reads a Tiled map whose tileset tiles carry a "tag" property from
// the level vocabulary.
func loadTiled(fsys fs.FS, name string) (Level, error) {
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("failed to load tiled map %s: %w", name, err)
	}

	level := Level{
		Name:   name,
		Width:  levelMap.Width,
		Height: levelMap.Height,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != tileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil {
					return Level{}, fmt.Errorf("tile %d at (%d,%d): %w", tile.ID, x, y, err)
				}
				tag := tilesetTile.Properties.GetString("tag")
				kind, ok := LookupTag(tag)
				if !ok {
					return Level{}, fmt.Errorf("tag %q at (%d,%d): %w", tag, x, y, ErrUnknownTag)
				}

				level.Tiles = append(level.Tiles, Tile{Tag: tag, Col: x, Row: y, Kind: kind})
			}
		}
		return level, nil
	}

	return Level{}, fmt.Errorf("tiled map %s has no %q layer", name, tileLayer)
}
