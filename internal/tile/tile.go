/*
Package tile paints the ground layer: a checkerboard of 8 by 8 grass tiles and
a horizontal dirt path band spanning the full canvas width.

Nothing here is random; the same geometry always produces the same pixels.
*/
package tile

import (
	"github.com/rook-computer/gbascene/internal/palette"
	"github.com/rook-computer/gbascene/internal/render"
)

// Size is the edge length of a grass tile.
const Size = 8

// speckStep is the horizontal period of the dirt speckles.
const speckStep = 8

// Band is a full-width horizontal strip starting at row Y, Height rows tall.
// It must lie inside the canvas; this is not checked.
type Band struct {
	Y      int `json:"y"`
	Height int `json:"height"`
}

// Top is the first row of the band.
func (b Band) Top() int { return b.Y }

// Bottom is the last row of the band, inclusive.
func (b Band) Bottom() int { return b.Y + b.Height - 1 }

// Dark reports whether grid cell (cx, cy) uses the dark grass variant.
func Dark(cx, cy int) bool {
	return (cx+cy)%2 == 1
}

// accented reports whether grid cell (cx, cy) carries grass tufts.
func accented(cx, cy int) bool {
	return cx%2 == 0 && cy%2 == 1
}

// DrawBackground tiles the whole canvas with alternating grass cells.
func DrawBackground(d render.Drawer, pal palette.Palette) {
	width, height := d.Size()
	light := pal.Color(palette.GrassLight)
	dark := pal.Color(palette.GrassDark)
	accent := pal.Color(palette.GrassAccent)
	for ty := 0; ty < height; ty += Size {
		for tx := 0; tx < width; tx += Size {
			cx, cy := tx/Size, ty/Size
			fill := light
			if Dark(cx, cy) {
				fill = dark
			}
			d.Rectangle(tx, ty, tx+Size-1, ty+Size-1, fill, nil)
			if accented(cx, cy) {
				d.Point(tx+3, ty+2, accent)
				d.Point(tx+6, ty+5, accent)
			}
		}
	}
}

// DrawPath fills band with dirt. The outermost row on each side is drawn in
// the edge color with a lighter speck-colored row just inside it.
func DrawPath(d render.Drawer, pal palette.Palette, band Band) {
	width, _ := d.Size()
	y0, y1 := band.Top(), band.Bottom()
	edge := pal.Color(palette.PathEdge)
	speck := pal.Color(palette.PathSpeck)

	d.Rectangle(0, y0, width-1, y1, pal.Color(palette.Path), nil)
	d.Line(0, y0, width-1, y0, edge)
	d.Line(0, y0+1, width-1, y0+1, speck)
	d.Line(0, y1, width-1, y1, edge)
	d.Line(0, y1-1, width-1, y1-1, speck)

	mid := y0 + band.Height/2
	for x := 2; x < width-2; x += speckStep {
		d.Rectangle(x, y0+6, x+1, y0+7, speck, nil)
		d.Rectangle(x+3, mid, x+4, mid+1, speck, nil)
		d.Rectangle(x+6, y1-6, x+7, y1-5, speck, nil)
	}
}

// DrawGround paints the grass background and then the path over it.
func DrawGround(d render.Drawer, pal palette.Palette, band Band) {
	DrawBackground(d, pal)
	DrawPath(d, pal, band)
}
