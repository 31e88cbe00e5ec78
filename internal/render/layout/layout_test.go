package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCornersNormalizes(t *testing.T) {
	assert.Equal(t, image.Rect(0, 100, 240, 102), Corners(0, 102, 240, 100))
	assert.Equal(t, image.Rectangle{Min: image.Pt(1, 2), Max: image.Pt(3, 4)}, Corners(3, 4, 1, 2))
}

func TestInsetSidesCanCollapse(t *testing.T) {
	r := InsetSides(Corners(0, 100, 240, 102), 2, 3)
	assert.Equal(t, image.Pt(2, 102), r.Min)
	assert.Equal(t, image.Pt(237, 99), r.Max)
	assert.False(t, Valid(r))

	r = InsetSides(Corners(10, 10, 15, 15), 2, 3)
	assert.True(t, Valid(r))
	assert.Equal(t, r.Min, r.Max)
}

func TestInset(t *testing.T) {
	r := image.Rectangle{Min: image.Pt(4, 100), Max: image.Pt(236, 156)}
	assert.Equal(t, image.Rectangle{Min: image.Pt(12, 108), Max: image.Pt(228, 148)}, Inset(r, 8))
	assert.Equal(t, r, Inset(r, 0))
}

func TestArea(t *testing.T) {
	assert.Equal(t, 240*58, Area(Corners(0, 0, 240, 58)))
	assert.Equal(t, 480, Area(Corners(0, 102, 240, 100)))
}
