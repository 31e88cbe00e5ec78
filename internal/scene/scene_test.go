package scene

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/gbascene/internal/palette"
	"github.com/rook-computer/gbascene/internal/scatter"
	"github.com/rook-computer/gbascene/internal/tile"
)

func TestDefaultOptionsAreValid(t *testing.T) {
	o := DefaultOptions()
	require.NoError(t, o.Validate())
	assert.Equal(t, 240, o.Width)
	assert.Equal(t, 160, o.Height)
	assert.Equal(t, int64(1337), o.Seed)
	assert.Equal(t, 14, o.Density)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(o *Options){
		"size":            func(o *Options) { o.Width = 0 },
		"band":            func(o *Options) { o.PathY = 150 },
		"negband":         func(o *Options) { o.PathY = -1 },
		"height":          func(o *Options) { o.PathHeight = 0 },
		"tallBand":        func(o *Options) { o.PathY, o.PathHeight = 0, 161 },
		"bandOverflow":    func(o *Options) { o.PathY, o.PathHeight = 1<<55, math.MaxInt-(1<<55)+10 },
		"density":         func(o *Options) { o.Density = 0 },
		"densityOverflow": func(o *Options) { o.Density = 1 << 61 },
		"spacing":         func(o *Options) { o.LineSpacing = -1 },
	}
	for name, mutate := range cases {
		o := DefaultOptions()
		mutate(&o)
		assert.Error(t, o.Validate(), name)
	}
}

func TestLargestDensityComposes(t *testing.T) {
	o := DefaultOptions()
	o.Density = math.MaxInt / scatter.AreaPerDensity
	require.NoError(t, o.Validate())
	assert.NotPanics(t, func() {
		_, stats := Compose(o, palette.Default())
		assert.Equal(t, 4, stats.Motifs)
	})
}

func TestDefaultLayout(t *testing.T) {
	l := NewLayout(DefaultOptions())

	assert.Equal(t, tile.Band{Y: 64, Height: 32}, l.Path)
	assert.Equal(t, 60, l.TopBandBottom)
	assert.Equal(t, 100, l.BottomBandTop)
	assert.Len(t, l.Trees, 48)
	assert.Contains(t, l.Trees, image.Pt(4, 8))
	assert.Contains(t, l.Trees, image.Pt(202, 24))
	assert.NotContains(t, l.Trees, image.Pt(4, 40))
	assert.Contains(t, l.Trees, image.Pt(6, 34))
	assert.Contains(t, l.Trees, image.Pt(12, 102))
	assert.Contains(t, l.Trees, image.Pt(200, 126))
	assert.Equal(t, []scatter.Region{
		{X0: 0, Y0: 0, X1: 240, Y1: 58},
		{X0: 0, Y0: 102, X1: 240, Y1: 100},
	}, l.FlowerRegions)
	assert.Equal(t, image.Pt(120, 72), l.NPC)
	assert.Equal(t, image.Pt(120, 92), l.Player)
	assert.Equal(t, image.Rectangle{Min: image.Pt(4, 100), Max: image.Pt(236, 156)}, l.Dialogue)
}

func TestLayoutReflowsWithPath(t *testing.T) {
	o := DefaultOptions()
	o.PathY = 80
	o.PathHeight = 24
	l := NewLayout(o)

	assert.Equal(t, 76, l.TopBandBottom)
	assert.Contains(t, l.Trees, image.Pt(4, 40))
	assert.Contains(t, l.Trees, image.Pt(6, 50))
	assert.Contains(t, l.Trees, image.Pt(12, 110))
	assert.Equal(t, 74, l.FlowerRegions[0].Y1)
	assert.Equal(t, 110, l.FlowerRegions[1].Y0)
	assert.Equal(t, image.Pt(120, 84), l.NPC)
	assert.Equal(t, image.Pt(120, 104), l.Player)
}

func TestComposeIsDeterministic(t *testing.T) {
	pal := palette.Default()
	a, statsA := Compose(DefaultOptions(), pal)
	b, statsB := Compose(DefaultOptions(), pal)

	require.Equal(t, a.Bounds(), b.Bounds())
	assert.Equal(t, a.Pix, b.Pix)
	assert.Equal(t, statsA, statsB)
}

func TestComposeStats(t *testing.T) {
	_, stats := Compose(DefaultOptions(), palette.Default())
	assert.Equal(t, Stats{Trees: 48, Motifs: 4, Glyphs: 42, TextLines: 2}, stats)
}

func TestSeedChangesFlowers(t *testing.T) {
	pal := palette.Default()
	o := DefaultOptions()
	a, _ := Compose(o, pal)
	o.Seed = 7
	b, _ := Compose(o, pal)
	assert.NotEqual(t, a.Pix, b.Pix)
}

func TestComposeDrawOrder(t *testing.T) {
	pal := palette.Default()
	c, _ := Compose(DefaultOptions(), pal)
	l := NewLayout(DefaultOptions())
	npc, _ := l.CharacterBounds()

	// NPC glasses bridge sits on top of the path
	assert.Equal(t, pal.Color(palette.Black), c.RGBAAt(npc.Min.X+7, npc.Min.Y+8))
	// dialogue box covers the bottom tree row
	assert.Equal(t, pal.Color(palette.BoxWhite), c.RGBAAt(120, 140))
	// path edge is visible left of the characters
	assert.Equal(t, pal.Color(palette.PathEdge), c.RGBAAt(100, 64))
}
