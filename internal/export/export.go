// Package export writes a rendered frame as PNG at its native size and at
// integer nearest-neighbor upscales.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// Scale returns img enlarged factor times, every source pixel becoming a
// factor x factor block.
func Scale(img image.Image, factor int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Encode writes img to w as PNG, upscaled by factor.
func Encode(w io.Writer, img image.Image, factor int) error {
	if factor < 1 {
		return fmt.Errorf("scale factor must be at least 1 (got %d)", factor)
	}
	if factor == 1 {
		return png.Encode(w, img)
	}
	return png.Encode(w, Scale(img, factor))
}

// FileName is the name used for a base path at a given scale: the native
// image is "<base>.png", upscales are "<base>_x<factor>.png".
func FileName(base string, factor int) string {
	if factor == 1 {
		return base + ".png"
	}
	return fmt.Sprintf("%s_x%d.png", base, factor)
}

// Exporter writes one file per scale factor.
type Exporter struct {
	Scales []int
}

// Export writes img under base for every configured scale and returns the
// written paths in scale order.
func (e Exporter) Export(img image.Image, base string) ([]string, error) {
	if dir := filepath.Dir(base); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	paths := make([]string, 0, len(e.Scales))
	for _, factor := range e.Scales {
		path := FileName(base, factor)
		if err := writeFile(path, img, factor); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, img image.Image, factor int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, img, factor); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
