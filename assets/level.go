package assets

import (
	"bufio"
	"fmt"
	"io"
)

// ParseLevel reads whitespace separated tags, filling rows of width tiles from
// the top-left. Tokens outside the vocabulary are ignored and take no cell.
func ParseLevel(r io.Reader, width, height int) (Level, error) {
	if width <= 0 || height <= 0 {
		return Level{}, fmt.Errorf("invalid grid %dx%d", width, height)
	}

	level := Level{Width: width, Height: height}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	col, row := 0, 0
	for scanner.Scan() {
		tag := scanner.Text()
		kind, ok := LookupTag(tag)
		if !ok {
			continue
		}
		if row >= height {
			return Level{}, fmt.Errorf("tag %q at row %d: %w", tag, row, ErrLevelOverflow)
		}

		level.Tiles = append(level.Tiles, Tile{Tag: tag, Col: col, Row: row, Kind: kind})

		col++
		if col >= width {
			col = 0
			row++
		}
	}
	if err := scanner.Err(); err != nil {
		return Level{}, err
	}
	return level, nil
}
