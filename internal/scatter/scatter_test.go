package scatter

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/gbascene/internal/palette"
	"github.com/rook-computer/gbascene/internal/render"
)

var sceneRegions = []Region{
	{0, 0, 240, 58},
	{0, 102, 240, 100},
}

func TestPlanIsDeterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 1337, -9} {
		a := Plan(sceneRegions, seed, 14)
		b := Plan(sceneRegions, seed, 14)
		assert.Equal(t, a, b, "seed %d", seed)
	}
}

func TestSeedChangesPlacement(t *testing.T) {
	assert.NotEqual(t, Plan(sceneRegions, 1, 14), Plan(sceneRegions, 2, 14))
}

func TestRegionOrderMatters(t *testing.T) {
	a := Region{0, 0, 100, 100}
	b := Region{100, 100, 200, 200}
	ab := Plan([]Region{a, b}, 7, 14)
	ba := Plan([]Region{b, a}, 7, 14)
	require.Len(t, ab, len(ba))
	assert.NotEqual(t, ab, ba)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 4, Count(Region{0, 0, 240, 58}, 14))
	assert.Equal(t, 4, Count(Region{0, 0, 6, 6}, 14))
	assert.Equal(t, 20, Count(Region{0, 0, 240, 240}, 14))
	assert.Equal(t, 57600/(3*200), Count(Region{240, 240, 0, 0}, 3))
}

func TestCountMatchesPlan(t *testing.T) {
	r := Region{0, 0, 240, 240}
	assert.Len(t, Plan([]Region{r}, 1337, 14), Count(r, 14))
	assert.Len(t, Plan([]Region{r}, 1337, 2), Count(r, 2))
}

func TestDegenerateRegionsAreSkipped(t *testing.T) {
	cases := []Region{
		{0, 102, 240, 100},
		{10, 10, 14, 40},
		{10, 10, 10, 10},
	}
	for _, r := range cases {
		_, ok := r.Sampling()
		assert.False(t, ok, "%+v", r)
		assert.Empty(t, Plan([]Region{r}, 1337, 14), "%+v", r)
	}
}

func TestSmallestUsableRegion(t *testing.T) {
	r := Region{10, 10, 15, 15}
	s, ok := r.Sampling()
	require.True(t, ok)
	assert.Equal(t, s.Min, s.Max)
	for _, p := range Plan([]Region{r}, 5, 14) {
		assert.Equal(t, image.Pt(12, 12), p)
	}
}

func TestMotifsStayInsideSampling(t *testing.T) {
	r := Region{240, 58, 0, 0}
	s, ok := r.Sampling()
	require.True(t, ok)
	motifs := Plan([]Region{r}, 1337, 1)
	require.Len(t, motifs, Count(r, 1))
	for _, p := range motifs {
		assert.True(t, p.X >= s.Min.X && p.X <= s.Max.X, "x %d", p.X)
		assert.True(t, p.Y >= s.Min.Y && p.Y <= s.Max.Y, "y %d", p.Y)
	}
}

func TestScatterDrawsMotifs(t *testing.T) {
	pal := palette.Default()
	c := render.NewCanvas(240, 160)
	motifs := Scatter(c, pal, sceneRegions, 1337, 14)
	require.Len(t, motifs, 4)

	last := motifs[len(motifs)-1]
	assert.Equal(t, pal.Color(palette.FlowerYellow), c.RGBAAt(last.X+1, last.Y+1))
	assert.Equal(t, pal.Color(palette.FlowerRed), c.RGBAAt(last.X+2, last.Y+2))
}
