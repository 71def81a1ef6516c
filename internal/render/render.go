// Package render produces the blended wallpaper frame and writes it to
// the configured output path.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Blend mixes two frames per pixel, output = a*(1-fraction) + b*fraction.
// Fraction is clamped to [0, 1]. Deterministic for fixed inputs.
func Blend(a, b image.Image, fraction float64) *image.NRGBA {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return imaging.Overlay(a, b, image.Pt(0, 0), fraction)
}

// Write encodes the frame to outPath. The image is encoded to a temp
// file in the same directory and renamed into place, so a consumer
// reading outPath never sees a torn write. The format follows the
// output extension, defaulting to PNG.
func Write(img image.Image, outPath string) error {
	format := imaging.PNG
	if f, err := imaging.FormatFromFilename(outPath); err == nil {
		format = f
	}

	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outPath)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}

	// Fast compression: the frame is rewritten every tick anyway
	err = imaging.Encode(tmp, img, format, imaging.PNGCompressionLevel(png.BestSpeed))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to encode %s: %w", outPath, err)
	}

	if err := os.Rename(tmp.Name(), outPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", outPath, err)
	}

	return nil
}
