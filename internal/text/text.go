/*
Package text lays out dialogue text in the 5x7 bitmap font.

Text is uppercased and split on single spaces. Each word becomes one or two
segments sharing a boldness value; a word starting with BoldPrefix always
renders that prefix bold and the rest regular. Words wrap greedily against a
maximum width, but the first word of a line is never moved, even when it alone
is wider than the line.
*/
package text

import (
	"image/color"
	"image/draw"
	"strings"

	"github.com/rook-computer/gbascene/internal/font"
)

const (
	// BoldPrefix is the literal word prefix that is always bolded on its own.
	BoldPrefix = "BAG"

	// Spacing after each glyph is one pixel tighter than the glyph advance.
	glyphTightening = 1
	// SegmentGap follows every segment of a word.
	SegmentGap = 2
	// WordGap follows every word.
	WordGap = 4
	// TrailingSpace is added to a word's measured width when wrapping.
	TrailingSpace = font.Advance
)

// BoldSet holds uppercased words that render bold.
type BoldSet map[string]struct{}

// NewBoldSet builds a BoldSet from words in any case.
func NewBoldSet(words ...string) BoldSet {
	set := make(BoldSet, len(words))
	for _, w := range words {
		set[strings.ToUpper(w)] = struct{}{}
	}
	return set
}

// Contains matches word exactly, without case folding.
func (s BoldSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Segment is a run of characters within a word sharing one boldness.
type Segment struct {
	Text string
	Bold bool
}

// Placement is one glyph positioned by Layout.
type Placement struct {
	Char rune
	X, Y int
	Bold bool
}

// Segments splits an uppercased word into its styled runs.
func Segments(word string, bold BoldSet) []Segment {
	if strings.HasPrefix(word, BoldPrefix) {
		segs := []Segment{{Text: BoldPrefix, Bold: true}}
		if rest := word[len(BoldPrefix):]; rest != "" {
			segs = append(segs, Segment{Text: rest})
		}
		return segs
	}
	return []Segment{{Text: word, Bold: bold.Contains(word)}}
}

// MeasureWord returns the wrapping width of a word: the sum of the glyph
// advances of every character plus TrailingSpace.
func MeasureWord(segs []Segment) int {
	width := 0
	for _, seg := range segs {
		for range seg.Text {
			width += font.AdvanceOf(seg.Bold)
		}
	}
	return width + TrailingSpace
}

// Layout positions every glyph of text starting at (x, y).
// Empty words produced by repeated spaces are skipped.
func Layout(text string, x, y, maxWidth int, bold BoldSet, lineSpacing int) []Placement {
	var out []Placement
	cursorX, cursorY := x, y
	for _, word := range strings.Split(strings.ToUpper(text), " ") {
		if word == "" {
			continue
		}
		segs := Segments(word, bold)
		if cursorX > x && cursorX+MeasureWord(segs) > x+maxWidth {
			cursorX = x
			cursorY += font.Height + lineSpacing
		}
		for _, seg := range segs {
			for _, ch := range seg.Text {
				out = append(out, Placement{Char: ch, X: cursorX, Y: cursorY, Bold: seg.Bold})
				cursorX += font.AdvanceOf(seg.Bold) - glyphTightening
			}
			cursorX += SegmentGap
		}
		cursorX += WordGap
	}
	return out
}

// Draw paints placed glyphs in c.
func Draw(dst draw.Image, placements []Placement, c color.Color) {
	for _, p := range placements {
		font.DrawGlyph(dst, p.Char, p.X, p.Y, c, p.Bold)
	}
}

// LayoutAndDraw lays out text and paints each glyph in c.
func LayoutAndDraw(dst draw.Image, text string, x, y, maxWidth int, bold BoldSet, lineSpacing int, c color.Color) {
	Draw(dst, Layout(text, x, y, maxWidth, bold, lineSpacing), c)
}

// Lines counts the distinct rows used by a layout.
func Lines(placements []Placement) int {
	lines := 0
	lastY := 0
	for i, p := range placements {
		if i == 0 || p.Y != lastY {
			lines++
			lastY = p.Y
		}
	}
	return lines
}
