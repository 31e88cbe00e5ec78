/*
Package scene composes the full frame.

Draw order is fixed: grass and path, trees, flowers, the NPC and the player,
then the dialogue box. Every position comes from NewLayout, so moving or
resizing the path reflows all layers.
*/
package scene

import (
	"github.com/rook-computer/gbascene/internal/dialogue"
	"github.com/rook-computer/gbascene/internal/palette"
	"github.com/rook-computer/gbascene/internal/render"
	"github.com/rook-computer/gbascene/internal/scatter"
	"github.com/rook-computer/gbascene/internal/sprite"
	"github.com/rook-computer/gbascene/internal/text"
	"github.com/rook-computer/gbascene/internal/tile"
)

// Stats summarizes what a render placed.
type Stats struct {
	Trees     int `json:"trees"`
	Motifs    int `json:"motifs"`
	Glyphs    int `json:"glyphs"`
	TextLines int `json:"textLines"`
}

// Compose renders the scene described by o onto a new canvas. Options are
// assumed valid; see Options.Validate.
func Compose(o Options, pal palette.Palette) (*render.Canvas, Stats) {
	l := NewLayout(o)
	c := render.NewCanvas(o.Width, o.Height)
	var stats Stats

	tile.DrawGround(c, pal, l.Path)

	for _, p := range l.Trees {
		sprite.Draw(c, pal, sprite.Tree, p.X, p.Y)
	}
	stats.Trees = len(l.Trees)

	stats.Motifs = len(scatter.Scatter(c, pal, l.FlowerRegions, o.Seed, o.Density))

	sprite.Draw(c, pal, sprite.NPCFront, l.NPC.X, l.NPC.Y)
	sprite.Draw(c, pal, sprite.PlayerBack, l.Player.X, l.Player.Y)

	box := dialogue.DefaultBox()
	box.BoldWords = text.NewBoldSet(o.BoldWords...)
	box.LineSpacing = o.LineSpacing
	placements := dialogue.Draw(c, pal, box, o.Text)
	stats.Glyphs = len(placements)
	stats.TextLines = text.Lines(placements)

	return c, stats
}
