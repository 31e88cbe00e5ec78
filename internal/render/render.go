package render

import (
	"context"
	"image"
	"image/color"
	"image/draw"
)

// Renderer is an output sink that presents a finished frame.
type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	Show(img image.Image) error
}

// Stub implementation
type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error { return nil }
func (n *NoopRenderer) Stop() error                     { return nil }
func (n *NoopRenderer) Show(img image.Image) error      { return nil }

// Drawer is the set of raster primitives the scene renderers paint with.
// Corner coordinates are inclusive and may be given in either order.
// A nil fill or outline color skips that part of the shape.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	Point(x, y int, c color.Color)
	Line(x0, y0, x1, y1 int, c color.Color)
	Rectangle(x0, y0, x1, y1 int, fill, outline color.Color)
	Polygon(points []image.Point, fill, outline color.Color)
	Ellipse(x0, y0, x1, y1 int, fill color.Color)
	RoundedRectangle(x0, y0, x1, y1, radius, width int, fill, outline color.Color)
}

// Surface is a Drawer that can also be used as an image/draw destination,
// which the glyph renderer needs.
type Surface interface {
	Drawer
	draw.Image
}
