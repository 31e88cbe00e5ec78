package scene

import (
	"image"

	"github.com/rook-computer/gbascene/internal/dialogue"
	"github.com/rook-computer/gbascene/internal/scatter"
	"github.com/rook-computer/gbascene/internal/sprite"
	"github.com/rook-computer/gbascene/internal/tile"
)

const (
	// bandGap separates the tree bands from the path edges.
	bandGap = 4
	// treeMargin keeps the last tree column off the right edge.
	treeMargin = 28
	// npcLift raises the NPC above the path center.
	npcLift = 8
	// playerDrop is the vertical distance from the NPC to the player.
	playerDrop = 20
	// flowerFloor keeps the lower flower region clear of the dialogue box.
	flowerFloor = 60
)

// topRows are the candidate rows of the upper tree band.
var topRows = []int{8, 24, 40}

// treeRow is one horizontal run of trees.
type treeRow struct {
	y, startX, step int
}

// Layout holds every position derived from the options. It is computed once
// per render.
type Layout struct {
	Path          tile.Band        `json:"path"`
	TopBandBottom int              `json:"topBandBottom"`
	BottomBandTop int              `json:"bottomBandTop"`
	Trees         []image.Point    `json:"trees"`
	FlowerRegions []scatter.Region `json:"flowerRegions"`
	NPC           image.Point      `json:"npc"`
	Player        image.Point      `json:"player"`
	Dialogue      image.Rectangle  `json:"dialogue"`
}

// NewLayout derives the scene geometry from canvas size and path band.
func NewLayout(o Options) Layout {
	l := Layout{
		Path:          tile.Band{Y: o.PathY, Height: o.PathHeight},
		TopBandBottom: o.PathY - bandGap,
		BottomBandTop: o.PathY + o.PathHeight + bandGap,
	}

	var rows []treeRow
	for _, y := range topRows {
		if y >= l.TopBandBottom-24 {
			continue
		}
		rows = append(rows, treeRow{y: y, startX: 4, step: 22})
	}
	rows = append(rows,
		treeRow{y: l.TopBandBottom - 26, startX: 6, step: 24},
		treeRow{y: l.BottomBandTop + 2, startX: 12, step: 24},
		treeRow{y: o.Height - 34, startX: 2, step: 22},
	)
	for _, row := range rows {
		for x := row.startX; x < o.Width-treeMargin; x += row.step {
			l.Trees = append(l.Trees, image.Pt(x, row.y))
		}
	}

	l.FlowerRegions = []scatter.Region{
		{X0: 0, Y0: 0, X1: o.Width, Y1: l.TopBandBottom - 2},
		{X0: 0, Y0: l.BottomBandTop + 2, X1: o.Width, Y1: o.Height - flowerFloor},
	}

	l.NPC = image.Pt(o.Width/2, o.PathY+o.PathHeight/2-npcLift)
	l.Player = image.Pt(l.NPC.X, l.NPC.Y+playerDrop)
	l.Dialogue = dialogue.DefaultBox().Rect(o.Width, o.Height)
	return l
}

// CharacterBounds returns the footprints of the NPC and the player.
func (l Layout) CharacterBounds() (npc, player image.Rectangle) {
	return sprite.NPCFront.Bounds(l.NPC.X, l.NPC.Y), sprite.PlayerBack.Bounds(l.Player.X, l.Player.Y)
}
