package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync/atomic"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
)

// DefaultFBDevice is the framebuffer opened when Device is empty.
const DefaultFBDevice = "/dev/fb0"

// FBRenderer presents frames on the Linux framebuffer. The frame is scaled by
// the largest integer factor that fits and centered on a black border.
type FBRenderer struct {
	Device string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	fbDev   *fb.Device
	running atomic.Bool
}

func NewFBRenderer(device string) *FBRenderer { return &FBRenderer{Device: device} }

func (r *FBRenderer) Start(ctx context.Context) error {
	path := r.Device
	if path == "" {
		path = DefaultFBDevice
	}
	dev, err := fb.Open(path)
	if err != nil {
		return err
	}
	r.fbDev = dev
	if r.Logger != nil {
		bounds := dev.Bounds()
		r.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", path, bounds.Dx(), bounds.Dy())
	}
	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

// Show blits img to the framebuffer.
func (r *FBRenderer) Show(img image.Image) error {
	if !r.running.Load() || r.fbDev == nil {
		return errors.New("framebuffer not started")
	}
	bounds := r.fbDev.Bounds()
	frame := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	dst := FitRect(frame.Bounds(), img.Bounds())
	xdraw.NearestNeighbor.Scale(frame, dst, img, img.Bounds(), xdraw.Src, nil)
	blitToFB(r.fbDev, frame)
	if r.Logger != nil {
		r.Logger.Infof("fb", "frame shown at %dx scale, rect=%v", dst.Dx()/max(img.Bounds().Dx(), 1), dst)
	}
	return nil
}

// FitRect returns the largest integer multiple of src that fits in screen,
// centered. When src is larger than screen, a 1x rectangle anchored at the
// screen origin is returned.
func FitRect(screen, src image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 {
		return image.Rectangle{}
	}
	scale := min(screen.Dx()/sw, screen.Dy()/sh)
	if scale < 1 {
		return image.Rect(screen.Min.X, screen.Min.Y, screen.Min.X+sw, screen.Min.Y+sh)
	}
	w, h := sw*scale, sh*scale
	x := screen.Min.X + (screen.Dx()-w)/2
	y := screen.Min.Y + (screen.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// Helper: copy frame pixel by pixel; the device handles its own pixel format.
func blitToFB(dev *fb.Device, frame *image.RGBA) {
	bounds := dev.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			pixel := frame.RGBAAt(x, y)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
