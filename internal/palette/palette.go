// Package palette holds the named colors used by every scene renderer.
package palette

import (
	"fmt"
	"image/color"
)

// Color names used by the renderers.
const (
	GrassLight   = "grass_light"
	GrassDark    = "grass_dark"
	GrassAccent  = "grass_accent"
	Path         = "path"
	PathEdge     = "path_edge"
	PathSpeck    = "path_speck"
	TreeMid      = "tree_mid"
	TreeLight    = "tree_light"
	TreeDark     = "tree_dark"
	Outline      = "outline"
	Trunk        = "trunk"
	FlowerRed    = "flower_red"
	FlowerYellow = "flower_yellow"
	Shadow       = "shadow"
	BoxWhite     = "box_white"
	BoxBorder    = "box_border"
	BoxShadow    = "box_shadow"
	NPCHatRed    = "npc_hat_red"
	Skin         = "skin"
	ClothBlue    = "cloth_blue"
	ClothGreen   = "cloth_green"
	Black        = "black"
	White        = "white"
)

// Palette maps a semantic color name to an opaque RGB color.
// A Palette is never mutated after construction.
type Palette struct {
	colors map[string]color.RGBA
}

// New builds a palette from name -> {r, g, b} triples.
func New(entries map[string][3]uint8) Palette {
	colors := make(map[string]color.RGBA, len(entries))
	for name, rgb := range entries {
		colors[name] = color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
	}
	return Palette{colors: colors}
}

// Default returns the handheld-style palette the scene is drawn with.
func Default() Palette {
	return New(map[string][3]uint8{
		GrassLight:   {123, 193, 66},
		GrassDark:    {103, 171, 56},
		GrassAccent:  {90, 150, 52},
		Path:         {226, 191, 92},
		PathEdge:     {184, 156, 70},
		PathSpeck:    {200, 168, 82},
		TreeMid:      {36, 146, 84},
		TreeLight:    {56, 168, 104},
		TreeDark:     {18, 96, 60},
		Outline:      {16, 40, 32},
		Trunk:        {110, 82, 50},
		FlowerRed:    {214, 54, 54},
		FlowerYellow: {245, 220, 82},
		Shadow:       {22, 22, 22},
		BoxWhite:     {248, 248, 248},
		BoxBorder:    {60, 90, 166},
		BoxShadow:    {40, 40, 40},
		NPCHatRed:    {212, 60, 60},
		Skin:         {250, 216, 160},
		ClothBlue:    {76, 124, 188},
		ClothGreen:   {86, 160, 102},
		Black:        {0, 0, 0},
		White:        {255, 255, 255},
	})
}

// Color returns the color bound to name.
// An unknown name is a programming error and panics.
func (p Palette) Color(name string) color.RGBA {
	c, ok := p.colors[name]
	if !ok {
		panic(fmt.Sprintf("palette: unknown color %q", name))
	}
	return c
}

// Has reports whether name is bound.
func (p Palette) Has(name string) bool {
	_, ok := p.colors[name]
	return ok
}

// Len returns the number of entries.
func (p Palette) Len() int { return len(p.colors) }
