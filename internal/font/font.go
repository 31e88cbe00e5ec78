/*
Package font implements the fixed 5 by 7 bitmap font used for dialogue text.

Every glyph is 5 columns by 7 rows. Lookup is case-insensitive and a
character missing from the table renders as blank space. Bold is simulated by
painting the same glyph a second time one pixel to the right; there is no
separate bold glyph set.

Face exposes the table as a golang.org/x/image/font.Face so it can also be
driven by a font.Drawer.
*/
package font

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 5
	Height = 7

	// Advance is the cursor advance of a regular glyph: 5px glyph + 1px space.
	Advance = Width + 1
	// BoldAdvance is the cursor advance of a double-struck glyph.
	BoldAdvance = Advance + 1
)

// Glyph is one row bitmask per line, bit 4 being the leftmost column.
type Glyph [Height]uint8

// On reports whether the cell at (col, row) is lit.
func (g Glyph) On(col, row int) bool {
	return g[row]&(1<<(Width-1-col)) != 0
}

var (
	glyphs = buildTable()
	blank  Glyph
)

func buildTable() map[rune]Glyph {
	table := make(map[rune]Glyph, len(glyphRows)+1)
	for r, rows := range glyphRows {
		table[r] = parseGlyph(r, rows)
	}
	// Typographic apostrophe shares the ASCII shape.
	table['’'] = table['\'']
	return table
}

func parseGlyph(r rune, rows [Height]string) Glyph {
	var g Glyph
	for y, row := range rows {
		if len(row) != Width {
			panic(fmt.Sprintf("font: glyph %q row %d has %d cells", r, y, len(row)))
		}
		for x := 0; x < Width; x++ {
			switch row[x] {
			case '1':
				g[y] |= 1 << (Width - 1 - x)
			case '0':
			default:
				panic(fmt.Sprintf("font: glyph %q row %d has bad cell %q", r, y, row[x]))
			}
		}
	}
	return g
}

// Lookup returns the glyph for r, uppercased first. ok is false when the
// table has no entry and the blank glyph is returned instead.
func Lookup(r rune) (g Glyph, ok bool) {
	g, ok = glyphs[unicode.ToUpper(r)]
	if !ok {
		return blank, false
	}
	return g, true
}

// AdvanceOf returns the advance for a regular or bold glyph.
func AdvanceOf(bold bool) int {
	if bold {
		return BoldAdvance
	}
	return Advance
}

// Face is a font.Face over the glyph table. Glyph masks live in a single
// alpha atlas, one Width x Height cell per rune.
type Face struct {
	atlas *image.Alpha
	index map[rune]int
}

var _ font.Face = (*Face)(nil)

// NewFace builds the atlas for every glyph in the table.
func NewFace() *Face {
	f := &Face{index: make(map[rune]int, len(glyphs))}
	f.atlas = image.NewAlpha(image.Rect(0, 0, Width, Height*len(glyphs)))
	i := 0
	for r, g := range glyphs {
		f.index[r] = i
		for row := 0; row < Height; row++ {
			for col := 0; col < Width; col++ {
				if g.On(col, row) {
					f.atlas.SetAlpha(col, i*Height+row, color.Alpha{A: 0xFF})
				}
			}
		}
		i++
	}
	return f
}

func (f *Face) Close() error { return nil }

// Glyph places the glyph's top-left corner at (dot.X, dot.Y-Height).
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	i, ok := f.index[unicode.ToUpper(r)]
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, fixed.I(Advance), false
	}
	x, y := dot.X.Floor(), dot.Y.Floor()-Height
	return image.Rect(x, y, x+Width, y+Height), f.atlas, image.Pt(0, i*Height), fixed.I(Advance), true
}

func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	_, ok = f.index[unicode.ToUpper(r)]
	bounds = fixed.R(0, -Height, Width, 0)
	return bounds, fixed.I(Advance), ok
}

func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	_, ok = f.index[unicode.ToUpper(r)]
	return fixed.I(Advance), ok
}

func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:    fixed.I(Height),
		Ascent:    fixed.I(Height),
		Descent:   0,
		XHeight:   fixed.I(Height),
		CapHeight: fixed.I(Height),
		CaretSlope: image.Point{
			X: 0,
			Y: 1,
		},
	}
}

// DrawGlyph paints r with its top-left corner at (x, y) and returns the
// advance width: Advance, or BoldAdvance when bold. A rune missing from the
// table paints nothing and still advances.
func (f *Face) DrawGlyph(dst draw.Image, r rune, x, y int, c color.Color, bold bool) int {
	src := image.NewUniform(c)
	passes := 1
	if bold {
		passes = 2
	}
	for pass := 0; pass < passes; pass++ {
		dr, mask, maskp, _, ok := f.Glyph(fixed.P(x+pass, y+Height), r)
		if !ok {
			break
		}
		draw.DrawMask(dst, dr, src, image.Point{}, mask, maskp, draw.Over)
	}
	return AdvanceOf(bold)
}

var defaultFace = NewFace()

// DrawGlyph draws with the shared face built from the glyph table.
func DrawGlyph(dst draw.Image, r rune, x, y int, c color.Color, bold bool) int {
	return defaultFace.DrawGlyph(dst, r, x, y, c, bold)
}
