/*
Package scatter places small flower motifs at seeded random positions inside
rectangular regions.

One generator is seeded per call and shared by all regions in the order given,
so the same seed, regions and region order always yield the same motifs.
*/
package scatter

import (
	"image"
	"math/rand"

	"github.com/rook-computer/gbascene/internal/palette"
	"github.com/rook-computer/gbascene/internal/render"
	"github.com/rook-computer/gbascene/internal/render/layout"
)

const (
	// MotifSize is the edge of the square flower motif.
	MotifSize = 3
	// MinMotifs is placed in every usable region however small.
	MinMotifs = 4
	// AreaPerDensity scales density into square pixels per motif.
	AreaPerDensity = 200

	insetLow  = 2
	insetHigh = 3
)

// Region is an axis-aligned rectangle given by two corners in any order.
type Region struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Rect returns the region with Min as the top-left corner.
func (r Region) Rect() image.Rectangle {
	return layout.Corners(r.X0, r.Y0, r.X1, r.Y1)
}

// Sampling returns the inclusive rectangle motif origins are drawn from and
// whether it is usable.
func (r Region) Sampling() (image.Rectangle, bool) {
	s := layout.InsetSides(r.Rect(), insetLow, insetHigh)
	return s, layout.Valid(s)
}

// Area is the normalized region area, at least 1.
func (r Region) Area() int {
	return max(1, layout.Area(r.Rect()))
}

// Count is the number of motifs placed in a usable region.
func Count(r Region, density int) int {
	return max(MinMotifs, r.Area()/(density*AreaPerDensity))
}

// Plan returns the top-left corner of every motif in draw order. Regions whose
// sampling rectangle is empty are skipped.
func Plan(regions []Region, seed int64, density int) []image.Point {
	rng := rand.New(rand.NewSource(seed))
	var out []image.Point
	for _, r := range regions {
		s, ok := r.Sampling()
		if !ok {
			continue
		}
		n := Count(r, density)
		for i := 0; i < n; i++ {
			x := s.Min.X + rng.Intn(s.Max.X-s.Min.X+1)
			y := s.Min.Y + rng.Intn(s.Max.Y-s.Min.Y+1)
			out = append(out, image.Pt(x, y))
		}
	}
	return out
}

// DrawMotif paints one 3x3 flower with its top-left corner at p.
func DrawMotif(d render.Drawer, pal palette.Palette, p image.Point) {
	d.Rectangle(p.X, p.Y, p.X+MotifSize-1, p.Y+MotifSize-1, pal.Color(palette.FlowerRed), nil)
	d.Point(p.X+1, p.Y+1, pal.Color(palette.FlowerYellow))
}

// Scatter draws the motifs planned for regions and returns their positions.
func Scatter(d render.Drawer, pal palette.Palette, regions []Region, seed int64, density int) []image.Point {
	motifs := Plan(regions, seed, density)
	for _, p := range motifs {
		DrawMotif(d, pal, p)
	}
	return motifs
}
