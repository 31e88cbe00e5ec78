package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/gbascene/internal/palette"
	"github.com/rook-computer/gbascene/internal/render"
)

func TestBand(t *testing.T) {
	b := Band{Y: 64, Height: 32}
	assert.Equal(t, 64, b.Top())
	assert.Equal(t, 95, b.Bottom())
}

func TestCheckerVariant(t *testing.T) {
	pal := palette.Default()
	c := render.NewCanvas(render.CanvasWidth, render.CanvasHeight)
	DrawBackground(c, pal)

	for cy := 0; cy < render.CanvasHeight/Size; cy++ {
		for cx := 0; cx < render.CanvasWidth/Size; cx++ {
			want := pal.Color(palette.GrassLight)
			if (cx+cy)%2 == 1 {
				want = pal.Color(palette.GrassDark)
			}
			assert.Equal(t, want, c.RGBAAt(cx*Size, cy*Size), "cell %d,%d", cx, cy)
			assert.Equal(t, want, c.RGBAAt(cx*Size+7, cy*Size+7), "cell %d,%d", cx, cy)
		}
	}
}

func TestGrassAccents(t *testing.T) {
	pal := palette.Default()
	c := render.NewCanvas(32, 32)
	DrawBackground(c, pal)

	accent := pal.Color(palette.GrassAccent)
	// cell (0,1) is accented, cell (1,1) is not
	assert.Equal(t, accent, c.RGBAAt(3, 10))
	assert.Equal(t, accent, c.RGBAAt(6, 13))
	assert.NotEqual(t, accent, c.RGBAAt(11, 10))
	assert.NotEqual(t, accent, c.RGBAAt(3, 2))
}

func TestPathBandEdges(t *testing.T) {
	pal := palette.Default()
	c := render.NewCanvas(render.CanvasWidth, render.CanvasHeight)
	band := Band{Y: 64, Height: 32}
	DrawGround(c, pal, band)

	edge := pal.Color(palette.PathEdge)
	speck := pal.Color(palette.PathSpeck)
	dirt := pal.Color(palette.Path)
	for _, x := range []int{0, 1, 119, 239} {
		assert.Equal(t, edge, c.RGBAAt(x, 64))
		assert.Equal(t, speck, c.RGBAAt(x, 65))
		assert.Equal(t, speck, c.RGBAAt(x, 94))
		assert.Equal(t, edge, c.RGBAAt(x, 95))
	}
	assert.Equal(t, dirt, c.RGBAAt(0, 70))
	assert.NotEqual(t, dirt, c.RGBAAt(0, 63))
	assert.NotEqual(t, dirt, c.RGBAAt(0, 96))
}

func TestPathSpeckles(t *testing.T) {
	pal := palette.Default()
	c := render.NewCanvas(render.CanvasWidth, render.CanvasHeight)
	DrawPath(c, pal, Band{Y: 64, Height: 32})

	speck := pal.Color(palette.PathSpeck)
	dirt := pal.Color(palette.Path)
	assert.Equal(t, speck, c.RGBAAt(2, 70))
	assert.Equal(t, speck, c.RGBAAt(3, 71))
	assert.Equal(t, speck, c.RGBAAt(5, 80))
	assert.Equal(t, speck, c.RGBAAt(8, 89))
	assert.Equal(t, speck, c.RGBAAt(226, 70))
	assert.Equal(t, dirt, c.RGBAAt(4, 70))
}
