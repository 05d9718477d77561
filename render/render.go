// Copyright 2026 Arne Drobrowski.
// Licensed under MIT license.  See "license" file in this source tree.

// Package render is the terminal front-end for a quantized palette: it
// prints one line per color, each styled as an ANSI truecolor swatch
// unless suppressed, with hex and/or decimal RGB text.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/edobrowo/paletter/color"
)

// Options controls how Write formats a palette.
type Options struct {
	// Hex prints #RRGGBB.
	Hex bool
	// RGB prints "r g b" decimal. Default when Hex and RGB are both false.
	RGB bool
	// Uncolored suppresses ANSI truecolor styling of the swatch line.
	Uncolored bool
	// Sort orders the palette by the HSV projection before printing.
	Sort bool
}

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
)

// Header writes the "Image N: path" banner original_source prints
// before each file's palette, bold unless opts.Uncolored.
func Header(w io.Writer, index int, path string, opts Options) error {
	if opts.Uncolored {
		_, err := fmt.Fprintf(w, "Image %d: %s\n", index, path)
		return err
	}
	_, err := fmt.Fprintf(w, "%sImage %d: %s%s\n", ansiBold, index, path, ansiReset)
	return err
}

// Write prints palette, one swatch line per color, followed by a
// trailing blank line. A copy of palette is sorted in place when
// opts.Sort is set; the caller's slice is left untouched.
func Write(w io.Writer, palette []color.RGB24, opts Options) error {
	ordered := palette
	if opts.Sort {
		ordered = make([]color.RGB24, len(palette))
		copy(ordered, palette)
		color.SortStable(ordered)
	}

	for _, c := range ordered {
		if err := writeSwatch(w, c, opts); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeSwatch(w io.Writer, c color.RGB24, opts Options) error {
	text := formatText(c, opts)

	if opts.Uncolored {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	lr, lg, lb := labelColor(c)
	bg := fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
	fg := fmt.Sprintf("\x1b[38;2;%d;%d;%dm", lr, lg, lb)
	_, err := fmt.Fprintf(w, "%s%s %s %s\n", bg, fg, text, ansiReset)
	return err
}

func formatText(c color.RGB24, opts Options) string {
	switch {
	case opts.Hex && opts.RGB:
		return c.String() + " " + c.Hex()
	case opts.Hex:
		return c.Hex()
	default:
		return c.String()
	}
}

// labelColor picks black or white, whichever contrasts more against c
// in CIE Lab space, so swatch text stays legible on any background.
func labelColor(c color.RGB24) (r, g, b uint8) {
	bg := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	black := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}
	if labDistance(bg, black) > labDistance(bg, white) {
		return 0, 0, 0
	}
	return 255, 255, 255
}

// labDistance is Euclidean distance in CIE Lab space.
func labDistance(c1, c2 colorful.Color) float64 {
	l1, a1, b1 := c1.Lab()
	l2, a2, b2 := c2.Lab()
	dl, da, db := l1-l2, a1-a2, b1-b2
	return math.Sqrt(dl*dl + da*da + db*db)
}
