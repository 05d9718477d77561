// Copyright 2026 Arne Drobrowski.
// Licensed under MIT license.  See "license" file in this source tree.

// Package mediancut implements median-cut color quantization: a
// recursive partition of color space, always splitting the bucket
// with the widest channel range, until the target palette size is
// reached.
package mediancut

import "github.com/edobrowo/paletter/color"

// bucket is a half-open offset into the shared colors array, plus the
// cached widest-channel statistic of the range [offset, next.offset).
type bucket struct {
	offset  int
	channel color.Channel
	delta   uint8
}

// Quantize reduces colors to at most paletteSize representative
// colors using median-cut. colors is reordered in place. Callers must
// ensure 1 <= paletteSize <= len(colors); colors must be non-empty.
func Quantize(colors []color.RGB24, paletteSize int) []color.RGB24 {
	ch, delta := color.MaxChannelDelta(colors)
	buckets := make([]bucket, 0, paletteSize+1)
	buckets = append(buckets, bucket{offset: 0, channel: ch, delta: delta})
	buckets = append(buckets, bucket{offset: len(colors), channel: color.ChannelBlue, delta: 0})

	for len(buckets) <= paletteSize {
		i := argmaxDelta(buckets)

		start := buckets[i].offset
		end := buckets[i+1].offset
		mid := (start + end) / 2

		color.RadixSortByChannel(colors[start:end], buckets[i].channel)

		chan0, delta0 := color.MaxChannelDelta(colors[start:mid])
		chan1, delta1 := color.MaxChannelDelta(colors[mid:end])

		buckets[i] = bucket{offset: start, channel: chan0, delta: delta0}
		buckets = insertBucket(buckets, i+1, bucket{offset: mid, channel: chan1, delta: delta1})
	}

	palette := make([]color.RGB24, 0, len(buckets)-1)
	for i := 0; i < len(buckets)-1; i++ {
		palette = append(palette, color.Average(colors[buckets[i].offset:buckets[i+1].offset]))
	}
	return palette
}

// argmaxDelta returns the index of the bucket with the greatest delta,
// the first such index on a tie.
func argmaxDelta(buckets []bucket) int {
	best := 0
	for i := 1; i < len(buckets); i++ {
		if buckets[i].delta > buckets[best].delta {
			best = i
		}
	}
	return best
}

func insertBucket(buckets []bucket, at int, b bucket) []bucket {
	buckets = append(buckets, bucket{})
	copy(buckets[at+1:], buckets[at:])
	buckets[at] = b
	return buckets
}
