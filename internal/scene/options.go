package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/rook-computer/gbascene/internal/render"
	"github.com/rook-computer/gbascene/internal/scatter"
)

// DefaultText is the line shown in the dialogue box.
const DefaultText = "MAGE PUT THE POTION AWAY IN THE BAG'S ITEMS POCKET."

// Options are the inputs of a render. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	PathY       int      `json:"pathY"`
	PathHeight  int      `json:"pathHeight"`
	Seed        int64    `json:"seed"`
	Density     int      `json:"density"`
	Text        string   `json:"text"`
	BoldWords   []string `json:"boldWords"`
	LineSpacing int      `json:"lineSpacing"`
}

// DefaultOptions returns the fixed scene.
func DefaultOptions() Options {
	return Options{
		Width:       render.CanvasWidth,
		Height:      render.CanvasHeight,
		PathY:       64,
		PathHeight:  32,
		Seed:        1337,
		Density:     14,
		Text:        DefaultText,
		BoldWords:   []string{"POTION", "BAG"},
		LineSpacing: 3,
	}
}

// Validate rejects options the renderers do not guard against.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("canvas size must be positive (got %dx%d)", o.Width, o.Height)
	}
	if o.PathHeight <= 0 {
		return fmt.Errorf("path height must be positive (got %d)", o.PathHeight)
	}
	if o.PathY < 0 || o.PathHeight > o.Height || o.PathY > o.Height-o.PathHeight {
		return fmt.Errorf("path band %d+%d exceeds canvas height %d", o.PathY, o.PathHeight, o.Height)
	}
	if o.Density <= 0 || o.Density > math.MaxInt/scatter.AreaPerDensity {
		return fmt.Errorf("density must be between 1 and %d (got %d)", math.MaxInt/scatter.AreaPerDensity, o.Density)
	}
	if o.LineSpacing < 0 {
		return errors.New("line spacing must not be negative")
	}
	return nil
}
