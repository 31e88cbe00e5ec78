package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/rook-computer/gbascene/internal/render/layout"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498

// coverageThreshold is the minimum mask alpha for a pixel to count as inside
// a filled shape. Shapes are drawn without anti-aliasing.
const coverageThreshold = 0x80

// Canvas is an offscreen RGB raster implementing Drawer.
type Canvas struct {
	*image.RGBA
}

// NewCanvas returns an opaque black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	return &Canvas{RGBA: img}
}

func (c *Canvas) Size() (int, int) {
	b := c.Bounds()
	return b.Dx(), b.Dy()
}

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.RGBA, c.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) Point(x, y int, col color.Color) {
	if col == nil {
		return
	}
	c.Set(x, y, col)
}

// Line draws a 1px line between two inclusive endpoints.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.Color) {
	if col == nil {
		return
	}
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *Canvas) Rectangle(x0, y0, x1, y1 int, fill, outline color.Color) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	if fill != nil {
		r := image.Rect(x0, y0, x1+1, y1+1).Intersect(c.Bounds())
		draw.Draw(c.RGBA, r, &image.Uniform{C: fill}, image.Point{}, draw.Src)
	}
	if outline != nil {
		c.Line(x0, y0, x1, y0, outline)
		c.Line(x1, y0, x1, y1, outline)
		c.Line(x1, y1, x0, y1, outline)
		c.Line(x0, y1, x0, y0, outline)
	}
}

// Polygon fills the polygon whose vertices sit on pixel centers, then strokes
// its closed outline.
func (c *Canvas) Polygon(points []image.Point, fill, outline color.Color) {
	if len(points) == 0 {
		return
	}
	if fill != nil && len(points) > 2 {
		box := image.Rectangle{Min: points[0], Max: points[0].Add(image.Pt(1, 1))}
		for _, p := range points[1:] {
			box = box.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
		}
		c.fillPath(box, fill, func(z *vector.Rasterizer, ox, oy float32) {
			z.MoveTo(float32(points[0].X)+0.5-ox, float32(points[0].Y)+0.5-oy)
			for _, p := range points[1:] {
				z.LineTo(float32(p.X)+0.5-ox, float32(p.Y)+0.5-oy)
			}
			z.ClosePath()
		})
	}
	if outline != nil {
		for i, p := range points {
			q := points[(i+1)%len(points)]
			c.Line(p.X, p.Y, q.X, q.Y, outline)
		}
	}
}

// Ellipse fills the ellipse inscribed in the inclusive box (x0,y0)-(x1,y1).
func (c *Canvas) Ellipse(x0, y0, x1, y1 int, fill color.Color) {
	if fill == nil {
		return
	}
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	box := image.Rect(x0, y0, x1+1, y1+1)
	c.fillPath(box, fill, func(z *vector.Rasterizer, ox, oy float32) {
		rx := float32(box.Dx()) / 2
		ry := float32(box.Dy()) / 2
		cx := float32(box.Min.X) - ox + rx
		cy := float32(box.Min.Y) - oy + ry
		kx, ky := rx*kappa, ry*kappa
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
		z.ClosePath()
	})
}

// RoundedRectangle fills a rounded box and strokes a border of the given
// width inside its edge.
func (c *Canvas) RoundedRectangle(x0, y0, x1, y1, radius, width int, fill, outline color.Color) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	outer := image.Rect(x0, y0, x1+1, y1+1)
	if outline == nil || width <= 0 {
		c.fillRounded(outer, radius, fill)
		return
	}
	c.fillRounded(outer, radius, outline)
	inner := layout.Inset(outer, width)
	if inner.Empty() {
		return
	}
	c.fillRounded(inner, radius-width, fill)
}

func (c *Canvas) fillRounded(box image.Rectangle, radius int, fill color.Color) {
	if fill == nil || box.Empty() {
		return
	}
	r := float32(radius)
	if r < 0 {
		r = 0
	}
	if half := float32(min(box.Dx(), box.Dy())) / 2; r > half {
		r = half
	}
	c.fillPath(box, fill, func(z *vector.Rasterizer, ox, oy float32) {
		left, top := float32(box.Min.X)-ox, float32(box.Min.Y)-oy
		right, bottom := float32(box.Max.X)-ox, float32(box.Max.Y)-oy
		k := r * (1 - kappa)
		z.MoveTo(left+r, top)
		z.LineTo(right-r, top)
		z.CubeTo(right-k, top, right, top+k, right, top+r)
		z.LineTo(right, bottom-r)
		z.CubeTo(right, bottom-k, right-k, bottom, right-r, bottom)
		z.LineTo(left+r, bottom)
		z.CubeTo(left+k, bottom, left, bottom-k, left, bottom-r)
		z.LineTo(left, top+r)
		z.CubeTo(left, top+k, left+k, top, left+r, top)
		z.ClosePath()
	})
}

// fillPath rasterizes the path built by build over box and paints every
// pixel with enough coverage. build receives the box origin to subtract.
func (c *Canvas) fillPath(box image.Rectangle, fill color.Color, build func(z *vector.Rasterizer, ox, oy float32)) {
	if box.Empty() {
		return
	}
	z := vector.NewRasterizer(box.Dx(), box.Dy())
	build(z, float32(box.Min.X), float32(box.Min.Y))
	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	rgba := color.RGBAModel.Convert(fill).(color.RGBA)
	clip := box.Intersect(c.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if mask.AlphaAt(x-box.Min.X, y-box.Min.Y).A >= coverageThreshold {
				c.SetRGBA(x, y, rgba)
			}
		}
	}
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
