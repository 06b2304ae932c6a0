package capture

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// fileTimeLayout names capture files so they sort by time.
const fileTimeLayout = "20060102-150405.000"

// Scale resizes img by factor with CatmullRom filtering. Factors <= 0 or == 1 return img
// unchanged; the result is never smaller than 1x1.
func Scale(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor == 1 {
		return img
	}
	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*factor+0.5))
	h := max(1, int(float64(b.Dy())*factor+0.5))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode scales img by factor and writes it to w as lossless WebP.
func Encode(w io.Writer, img image.Image, factor float64) error {
	if err := nativewebp.Encode(w, Scale(img, factor), nil); err != nil {
		return fmt.Errorf("WebP encode: %w", err)
	}
	return nil
}

// Save encodes img into dir as capture-<time>.webp and returns the file path.
// dir is created if needed.
func Save(dir string, img image.Image, factor float64, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "capture-"+now.Format(fileTimeLayout)+".webp")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Encode(f, img, factor); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
