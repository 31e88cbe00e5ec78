package sprite

import (
	"image"

	p "github.com/rook-computer/gbascene/internal/palette"
)

// Character footprint shared by the player and the NPC.
const (
	CharacterWidth  = 16
	CharacterHeight = 24
)

func pts(xy ...int) []image.Point {
	out := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, image.Pt(xy[i], xy[i+1]))
	}
	return out
}

func rect(x0, y0, x1, y1 int, fill, outline string) Shape {
	return Shape{Kind: Rect, Points: pts(x0, y0, x1, y1), Fill: fill, Outline: outline}
}

func poly(fill string, xy ...int) Shape {
	return Shape{Kind: Poly, Points: pts(xy...), Fill: fill, Outline: p.Outline}
}

// ShadowShape is a flat ellipse w x h whose bounding box starts at (x, y).
func ShadowShape(x, y, w, h int) Shape {
	return Shape{Kind: Oval, Points: pts(x, y, x+w, y+h), Fill: p.Shadow}
}

// characterShadow sits under the feet of a 16x24 character.
var characterShadow = ShadowShape(2, CharacterHeight-6, 12, 4)

// Tree is an evergreen about 28x30: stepped canopy trapezoids, two side leaf
// lumps and a short trunk.
var Tree = Sprite{
	Name:   "tree",
	Anchor: TopLeft,
	Width:  28,
	Height: 30,
	Layers: []Shape{
		poly(p.TreeDark, 2, 20, 26, 20, 22, 26, 6, 26),
		poly(p.TreeMid, 4, 14, 24, 14, 21, 20, 7, 20),
		poly(p.TreeLight, 6, 9, 22, 9, 20, 14, 8, 14),
		poly(p.TreeLight, 8, 5, 20, 5, 18, 9, 10, 9),
		poly(p.TreeMid, 10, 2, 18, 2, 17, 5, 11, 5),
		poly(p.TreeMid, 1, 16, 6, 12, 6, 18),
		poly(p.TreeMid, 26, 16, 21, 12, 21, 18),
		rect(12, 26, 16, 28, p.Trunk, p.Outline),
	},
}

// PlayerBack is the player seen from behind: cap, head, backpack with
// straps, legs.
var PlayerBack = Sprite{
	Name:   "player",
	Anchor: Center,
	Width:  CharacterWidth,
	Height: CharacterHeight,
	Layers: []Shape{
		characterShadow,
		rect(3, 1, 12, 4, p.ClothBlue, p.Outline),
		rect(4, 4, 11, 5, p.ClothBlue, p.Outline),
		rect(4, 6, 11, 11, p.Skin, p.Outline),
		rect(5, 11, 10, 20, p.ClothGreen, p.Outline),
		rect(4, 12, 5, 15, p.ClothBlue, p.Outline),
		rect(10, 12, 11, 15, p.ClothBlue, p.Outline),
		rect(6, 20, 9, 22, p.ClothBlue, p.Outline),
	},
}

// NPCFront faces the viewer: red hat, face with glasses, shirt, dark shoes.
var NPCFront = Sprite{
	Name:   "npc",
	Anchor: Center,
	Width:  CharacterWidth,
	Height: CharacterHeight,
	Layers: []Shape{
		characterShadow,
		rect(3, 1, 12, 4, p.NPCHatRed, p.Outline),
		rect(2, 3, 13, 4, p.NPCHatRed, p.Outline),
		rect(4, 5, 11, 11, p.Skin, p.Outline),
		rect(5, 7, 6, 9, "", p.Black),
		rect(9, 7, 10, 9, "", p.Black),
		{Kind: Dot, Points: pts(7, 8), Fill: p.Black},
		rect(4, 11, 11, 19, p.ClothBlue, p.Outline),
		rect(6, 19, 9, 22, p.Outline, p.Outline),
	},
}

// Shadow is a standalone 12x4 shadow, anchored top-left.
var Shadow = Sprite{
	Name:   "shadow",
	Anchor: TopLeft,
	Width:  13,
	Height: 5,
	Layers: []Shape{ShadowShape(0, 0, 12, 4)},
}

var byName = map[string]Sprite{
	Tree.Name:       Tree,
	PlayerBack.Name: PlayerBack,
	NPCFront.Name:   NPCFront,
	Shadow.Name:     Shadow,
}

// ByName returns the sprite registered under name.
func ByName(name string) (Sprite, bool) {
	s, ok := byName[name]
	return s, ok
}
