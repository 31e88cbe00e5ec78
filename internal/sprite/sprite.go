/*
Package sprite draws fixed multi-layer sprites built from filled, outlined
shapes.

A Sprite is data: an ordered list of shapes with coordinates relative to the
sprite origin and palette names for fill and outline. Layers are drawn first to
last, so later layers cover earlier ones. Character sprites start with a flat
shadow ellipse so the body always lands on top of it.
*/
package sprite

import (
	"image"
	"image/color"

	"github.com/rook-computer/gbascene/internal/palette"
	"github.com/rook-computer/gbascene/internal/render"
)

// Kind selects the primitive a Shape is drawn with.
type Kind int

const (
	// Rect uses Points[0] and Points[1] as inclusive corners.
	Rect Kind = iota
	// Poly uses all Points as polygon vertices.
	Poly
	// Dot sets the single pixel Points[0].
	Dot
	// Oval fills the ellipse inscribed in the corners Points[0] and Points[1].
	Oval
)

func (k Kind) String() string {
	switch k {
	case Rect:
		return "rect"
	case Poly:
		return "poly"
	case Dot:
		return "dot"
	case Oval:
		return "oval"
	default:
		return "unknown"
	}
}

// Shape is one layer of a sprite. An empty Fill or Outline name skips that
// part of the shape.
type Shape struct {
	Kind    Kind
	Points  []image.Point
	Fill    string
	Outline string
}

// Anchor says how the position passed to Draw maps to the sprite origin.
type Anchor int

const (
	// TopLeft places the origin at the given position.
	TopLeft Anchor = iota
	// Center centers the Width x Height footprint on the given position.
	Center
)

// Sprite is a named, ordered stack of shapes.
type Sprite struct {
	Name   string
	Anchor Anchor
	Width  int
	Height int
	Layers []Shape
}

// Origin returns the top-left corner for a sprite drawn at (x, y).
func (s Sprite) Origin(x, y int) image.Point {
	if s.Anchor == Center {
		return image.Pt(x-s.Width/2, y-s.Height/2)
	}
	return image.Pt(x, y)
}

// Bounds is the footprint of a sprite drawn at (x, y), half-open.
func (s Sprite) Bounds(x, y int) image.Rectangle {
	o := s.Origin(x, y)
	return image.Rect(o.X, o.Y, o.X+s.Width, o.Y+s.Height)
}

// Draw paints every layer of s at (x, y).
func Draw(d render.Drawer, pal palette.Palette, s Sprite, x, y int) {
	o := s.Origin(x, y)
	for _, shape := range s.Layers {
		drawShape(d, pal, shape, o)
	}
}

func drawShape(d render.Drawer, pal palette.Palette, shape Shape, o image.Point) {
	fill := lookup(pal, shape.Fill)
	outline := lookup(pal, shape.Outline)
	pts := make([]image.Point, len(shape.Points))
	for i, p := range shape.Points {
		pts[i] = p.Add(o)
	}
	switch shape.Kind {
	case Rect:
		d.Rectangle(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, fill, outline)
	case Poly:
		d.Polygon(pts, fill, outline)
	case Dot:
		d.Point(pts[0].X, pts[0].Y, fill)
	case Oval:
		d.Ellipse(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, fill)
	}
}

func lookup(pal palette.Palette, name string) color.Color {
	if name == "" {
		return nil
	}
	return pal.Color(name)
}

// Colors lists every palette name a sprite references.
func (s Sprite) Colors() []string {
	seen := map[string]bool{}
	var names []string
	for _, shape := range s.Layers {
		for _, name := range []string{shape.Fill, shape.Outline} {
			if name != "" && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// Render draws s alone on a canvas of its own footprint filled with the
// background color.
func Render(pal palette.Palette, s Sprite, background string) *render.Canvas {
	c := render.NewCanvas(s.Width, s.Height)
	c.Fill(pal.Color(background))
	b := s.Bounds(0, 0)
	Draw(c, pal, s, -b.Min.X, -b.Min.Y)
	return c
}
