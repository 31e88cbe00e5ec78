package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultColors(t *testing.T) {
	p := Default()

	assert.Equal(t, color.RGBA{R: 123, G: 193, B: 66, A: 0xFF}, p.Color(GrassLight))
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 0xFF}, p.Color(Black))
	assert.Equal(t, 23, p.Len())
}

func TestEveryNamedColorIsBound(t *testing.T) {
	p := Default()
	names := []string{
		GrassLight, GrassDark, GrassAccent, Path, PathEdge, PathSpeck,
		TreeMid, TreeLight, TreeDark, Outline, Trunk, FlowerRed, FlowerYellow,
		Shadow, BoxWhite, BoxBorder, BoxShadow, NPCHatRed, Skin, ClothBlue,
		ClothGreen, Black, White,
	}
	for _, name := range names {
		assert.True(t, p.Has(name), name)
	}
}

func TestUnknownColorPanics(t *testing.T) {
	p := Default()
	assert.PanicsWithValue(t, `palette: unknown color "magenta"`, func() {
		p.Color("magenta")
	})
}
