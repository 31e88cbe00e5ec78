package render

// Native canvas size of the handheld screen the scene imitates.
const (
	CanvasWidth  = 240
	CanvasHeight = 160
)

// Upscale factors written next to the native image.
var ExportScales = []int{1, 2, 3}
