// Copyright 2026 Arne Drobrowski.
// Licensed under MIT license.  See "license" file in this source tree.

// Package color provides the RGB24 color primitive shared by the
// quantization engines: channel statistics, an HSV-derived total
// ordering used only for display, and the per-level bit index the
// octree uses as a child selector.
package color

import (
	"fmt"
	"math"
)

// RGB24 is a 24-bit color, one byte per channel.
type RGB24 struct {
	R, G, B uint8
}

// New returns an RGB24 from its three channels.
func New(r, g, b uint8) RGB24 {
	return RGB24{R: r, G: g, B: b}
}

// Channel identifies one of the three RGB24 channels.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	default:
		return "invalid"
	}
}

// At returns the value of channel ch.
func (c RGB24) At(ch Channel) uint8 {
	switch ch {
	case ChannelRed:
		return c.R
	case ChannelGreen:
		return c.G
	default:
		return c.B
	}
}

func minu8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxu8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

// Min returns the channel-wise minimum of two colors.
func Min(a, b RGB24) RGB24 {
	return RGB24{minu8(a.R, b.R), minu8(a.G, b.G), minu8(a.B, b.B)}
}

// Max returns the channel-wise maximum of two colors.
func Max(a, b RGB24) RGB24 {
	return RGB24{maxu8(a.R, b.R), maxu8(a.G, b.G), maxu8(a.B, b.B)}
}

// MaxChannelDelta reduces colors to their channel-wise min and max and
// returns the channel with the strictly greatest range, along with that
// range. Red or Green wins only when its range is strictly greater
// than both others; any tie for the greatest range goes to Blue, the
// default sink. colors must be non-empty.
func MaxChannelDelta(colors []RGB24) (Channel, uint8) {
	min := RGB24{255, 255, 255}
	max := RGB24{0, 0, 0}
	for _, c := range colors {
		min = Min(min, c)
		max = Max(max, c)
	}

	dr := max.R - min.R
	dg := max.G - min.G
	db := max.B - min.B

	switch {
	case dr > dg && dr > db:
		return ChannelRed, dr
	case dg > dr && dg > db:
		return ChannelGreen, dg
	default:
		return ChannelBlue, db
	}
}

// Average returns the channel-wise mean of colors, using 64-bit
// accumulation and rounding half-away-from-zero to the nearest uint8.
// colors must be non-empty.
func Average(colors []RGB24) RGB24 {
	var rsum, gsum, bsum uint64
	for _, c := range colors {
		rsum += uint64(c.R)
		gsum += uint64(c.G)
		bsum += uint64(c.B)
	}
	n := float32(len(colors))
	return RGB24{
		R: uint8(math.Round(float64(float32(rsum) / n))),
		G: uint8(math.Round(float64(float32(gsum) / n))),
		B: uint8(math.Round(float64(float32(bsum) / n))),
	}
}

// Hex formats the color as "#RRGGBB", uppercase, zero-padded.
func (c RGB24) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String formats the color as three right-aligned decimal channels,
// matching the renderer's default output.
func (c RGB24) String() string {
	return fmt.Sprintf("%3d %3d %3d", c.R, c.G, c.B)
}

// LevelIndex packs bit 7-level of R, G, and B into a 3-bit child
// selector: (Rbit<<2)|(Gbit<<1)|Bbit. level must be in [0,7]; bit 7 is
// the most significant bit.
func (c RGB24) LevelIndex(level int) int {
	mask := uint8(0x80 >> uint(level))
	idx := 0
	if c.R&mask != 0 {
		idx |= 4
	}
	if c.G&mask != 0 {
		idx |= 2
	}
	if c.B&mask != 0 {
		idx |= 1
	}
	return idx
}

// HSV projects the color into an (H,S,V) triple used only to induce a
// total order for display: H in [0,180] (half-degree units), S and V
// in [0,100]. Two RGB24 values with identical HSV triples are
// considered equal under the ordering even if their RGB differs.
func (c RGB24) HSV() (h, s, v uint8) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	cmax := math.Max(r, math.Max(g, b))
	cmin := math.Min(r, math.Min(g, b))
	d := cmax - cmin

	var hue float64
	switch {
	case d == 0:
		hue = 0
	case cmax == r:
		hue = math.Mod((g-b)/d, 6)
		if hue < 0 {
			hue += 6
		}
	case cmax == g:
		hue = (b-r)/d + 2
	default:
		hue = (r-g)/d + 4
	}
	hue *= 30

	var sat float64
	if cmax != 0 {
		sat = d / cmax
	}

	h = uint8(math.Round(hue))
	s = uint8(math.Round(100 * sat))
	v = uint8(math.Round(100 * cmax))
	return
}

// Less reports whether c sorts before other under the HSV projection:
// lexicographic comparison of (H,S,V). This is a weak total order —
// RGB24 values that share an HSV triple compare equal.
func (c RGB24) Less(other RGB24) bool {
	h1, s1, v1 := c.HSV()
	h2, s2, v2 := other.HSV()
	if h1 != h2 {
		return h1 < h2
	}
	if s1 != s2 {
		return s1 < s2
	}
	return v1 < v2
}
