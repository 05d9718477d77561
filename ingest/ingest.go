// Copyright 2026 Arne Drobrowski.
// Licensed under MIT license.  See "license" file in this source tree.

// Package ingest decodes an image file into the flat RGB24 color list
// the quantization engines operate on, filtering out pixels whose
// alpha falls below a caller-supplied threshold.
package ingest

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/deepteams/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/edobrowo/paletter/color"
)

// ErrUnreadable wraps a failure to open or decode an image file.
var ErrUnreadable = errors.New("ingest: unreadable image")

// Colors decodes the image at path and returns one color.RGB24 per
// pixel whose alpha is greater than or equal to alphaThreshold. Images
// with no alpha channel are treated as fully opaque: every pixel
// passes. A decode failure wraps ErrUnreadable.
func Colors(path string, alphaThreshold uint8) ([]color.RGB24, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	bounds := img.Bounds()
	colors := make([]color.RGB24, 0, bounds.Dx()*bounds.Dy())
	threshold := uint32(alphaThreshold) * 0x101 // scale 8-bit threshold to 16-bit alpha range

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a < threshold {
				continue
			}
			// Un-premultiply: image.Color.RGBA() returns
			// alpha-premultiplied 16-bit channels.
			if a > 0 && a < 0xffff {
				r = r * 0xffff / a
				g = g * 0xffff / a
				b = b * 0xffff / a
			}
			colors = append(colors, color.New(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}
	return colors, nil
}
