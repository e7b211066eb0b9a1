package assets

import (
	"image"
	"image/color"
	"image/draw"
)

// AtlasLayout places the sprites that are not level tiles. Player cells are in
// tiles, coin cells in half tiles.
type AtlasLayout struct {
	TileSize   int
	PlayerCol  int
	PlayerRow  int
	CoinCol    int
	CoinRow    int
	Background color.RGBA
}

var (
	wallFill   = color.RGBA{R: 110, G: 76, B: 52, A: 255}
	wallEdge   = color.RGBA{R: 70, G: 46, B: 30, A: 255}
	skyFill    = color.RGBA{R: 120, G: 170, B: 220, A: 255}
	skyDark    = color.RGBA{R: 96, G: 140, B: 196, A: 255}
	cloudFill  = color.RGBA{R: 235, G: 240, B: 250, A: 255}
	playerBody = color.RGBA{R: 230, G: 120, B: 40, A: 255}
	playerEye  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	coinFill   = color.RGBA{R: 250, G: 210, B: 40, A: 255}
	coinEdge   = color.RGBA{R: 190, G: 140, B: 20, A: 255}
)

// Atlas paints the sprite sheet every visual samples from. Each tag gets a cell
// coloured by its kind so the game ships without image files.
func Atlas(layout AtlasLayout) *image.RGBA {
	ts := layout.TileSize
	cols, rows := layout.PlayerCol+1, layout.PlayerRow+1
	for _, k := range Tags {
		cols = max(cols, k.Col+1)
		rows = max(rows, k.Row+1)
	}
	cols = max(cols, (layout.CoinCol+2)/2)
	rows = max(rows, (layout.CoinRow+2)/2)

	img := image.NewRGBA(image.Rect(0, 0, cols*ts, rows*ts))
	fill(img, img.Bounds(), layout.Background)

	for tag, k := range Tags {
		cell := image.Rect(k.Col*ts, k.Row*ts, (k.Col+1)*ts, (k.Row+1)*ts)
		switch {
		case k.Collidable:
			paintWall(img, cell)
		default:
			paintSky(img, cell, tag)
		}
	}

	px, py := layout.PlayerCol*ts, layout.PlayerRow*ts
	paintPlayer(img, image.Rect(px, py, px+ts/2, py+ts))

	half := ts / 2
	cx, cy := layout.CoinCol*half, layout.CoinRow*half
	paintCoin(img, image.Rect(cx, cy, cx+half, cy+half))

	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func paintWall(img *image.RGBA, cell image.Rectangle) {
	fill(img, cell, wallEdge)
	fill(img, cell.Inset(1), wallFill)
}

func paintSky(img *image.RGBA, cell image.Rectangle, tag string) {
	base := skyFill
	if tag == "sb" {
		base = skyDark
	}
	fill(img, cell, base)

	// Numbered and corner sky pieces carry a small cloud.
	if tag != "s" && tag != "sb" {
		w, h := cell.Dx(), cell.Dy()
		puff := image.Rect(cell.Min.X+w/4, cell.Min.Y+h/3, cell.Min.X+3*w/4, cell.Min.Y+h/2)
		fill(img, puff, cloudFill)
	}
}

func paintPlayer(img *image.RGBA, cell image.Rectangle) {
	fill(img, cell, playerBody)
	w, h := cell.Dx(), cell.Dy()
	// The sprite faces left; flipping mirrors it.
	eye := image.Rect(cell.Min.X+w/4, cell.Min.Y+h/4, cell.Min.X+w/4+max(1, w/4), cell.Min.Y+h/4+max(1, h/8))
	fill(img, eye, playerEye)
}

func paintCoin(img *image.RGBA, cell image.Rectangle) {
	fill(img, cell.Inset(cell.Dx()/8), coinEdge)
	fill(img, cell.Inset(cell.Dx()/4), coinFill)
}
