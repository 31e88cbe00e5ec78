package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Corners builds a normalized rectangle from two corner points given in any
// order. The rectangle is not made half-open: Max is the second corner as is.
func Corners(x0, y0, x1, y1 int) image.Rectangle {
	return Normalize(image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)})
}

// InsetSides moves Min inward by low and Max inward by high on both axes.
// The result is not normalized; callers use Valid to detect a collapsed rect.
func InsetSides(rect image.Rectangle, low, high int) image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(rect.Min.X+low, rect.Min.Y+low),
		Max: image.Pt(rect.Max.X-high, rect.Max.Y-high),
	}
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	return InsetSides(rect, paddingPx, paddingPx)
}

// Valid reports whether Min <= Max on both axes, treating Max as inclusive.
func Valid(rect image.Rectangle) bool {
	return rect.Min.X <= rect.Max.X && rect.Min.Y <= rect.Max.Y
}

// Area is width times height of a corner-defined rectangle.
func Area(rect image.Rectangle) int {
	rect = Normalize(rect)
	return (rect.Max.X - rect.Min.X) * (rect.Max.Y - rect.Min.Y)
}
