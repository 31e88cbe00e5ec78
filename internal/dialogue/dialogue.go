// Package dialogue draws the message panel along the bottom of the scene.
package dialogue

import (
	"image"

	"github.com/rook-computer/gbascene/internal/palette"
	"github.com/rook-computer/gbascene/internal/render"
	"github.com/rook-computer/gbascene/internal/text"
)

// Box holds the fixed panel geometry and text styling.
type Box struct {
	Height       int
	Inset        int // gap between the panel and the canvas edges
	Margin       int // horizontal text margin inside the panel
	Radius       int
	BorderWidth  int
	ShadowOffset int
	LineSpacing  int
	BoldWords    text.BoldSet
}

// DefaultBox is the panel used by the scene.
func DefaultBox() Box {
	return Box{
		Height:       56,
		Inset:        4,
		Margin:       8,
		Radius:       6,
		BorderWidth:  3,
		ShadowOffset: 2,
		LineSpacing:  3,
		BoldWords:    text.NewBoldSet("POTION", "BAG"),
	}
}

// Rect returns the panel corners for a canvas of the given size. Max is
// inclusive.
func (b Box) Rect(width, height int) image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(b.Inset, height-b.Height-b.Inset),
		Max: image.Pt(width-b.Inset, height-b.Inset),
	}
}

// TextArea returns the text origin and wrap width inside panel r.
func (b Box) TextArea(r image.Rectangle) (x, y, maxWidth int) {
	return r.Min.X + b.Margin + 2, r.Min.Y + 10, r.Dx() - 2*b.Margin
}

// Indicator returns the "more text" triangle anchored near the bottom-right.
func (b Box) Indicator(r image.Rectangle) []image.Point {
	ax, ay := r.Max.X-14, r.Max.Y-10
	return []image.Point{{ax, ay}, {ax + 4, ay}, {ax + 2, ay + 3}}
}

// Draw paints the shadow, panel, border, indicator and msg, in that order,
// and returns the glyph placements of msg.
func Draw(s render.Surface, pal palette.Palette, b Box, msg string) []text.Placement {
	width, height := s.Size()
	r := b.Rect(width, height)
	off := b.ShadowOffset
	s.RoundedRectangle(r.Min.X+off, r.Min.Y+off, r.Max.X+off, r.Max.Y+off, b.Radius, 0, pal.Color(palette.BoxShadow), nil)
	s.RoundedRectangle(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, b.Radius, b.BorderWidth, pal.Color(palette.BoxWhite), pal.Color(palette.BoxBorder))
	s.Polygon(b.Indicator(r), pal.Color(palette.BoxBorder), nil)

	x, y, maxWidth := b.TextArea(r)
	placements := text.Layout(msg, x, y, maxWidth, b.BoldWords, b.LineSpacing)
	text.Draw(s, placements, pal.Color(palette.Black))
	return placements
}
