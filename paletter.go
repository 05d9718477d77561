// Copyright 2026 Arne Drobrowski.
// Licensed under MIT license.  See "license" file in this source tree.

// Package paletter dispatches between the median-cut and octree color
// quantization engines.
package paletter

import (
	"github.com/edobrowo/paletter/color"
	"github.com/edobrowo/paletter/mediancut"
	"github.com/edobrowo/paletter/octree"
)

// Method selects which quantization engine Solve runs.
type Method int

const (
	MethodMedianCut Method = iota
	MethodOctree
)

func (m Method) String() string {
	switch m {
	case MethodMedianCut:
		return "median-cut"
	case MethodOctree:
		return "octree"
	default:
		return "unknown"
	}
}

// Solve reduces colors to paletteSize representative colors using the
// chosen method; the octree method can return more or fewer, see
// octree.Quantize. If paletteSize >= len(colors), colors is
// returned unchanged (no quantization is needed). colors must be
// non-empty and paletteSize must be >= 1.
func Solve(method Method, colors []color.RGB24, paletteSize int) []color.RGB24 {
	if paletteSize >= len(colors) {
		out := make([]color.RGB24, len(colors))
		copy(out, colors)
		return out
	}
	switch method {
	case MethodOctree:
		return QuantizeOctree(colors, paletteSize)
	default:
		return QuantizeMedianCut(colors, paletteSize)
	}
}

// QuantizeMedianCut runs the median-cut engine directly.
func QuantizeMedianCut(colors []color.RGB24, paletteSize int) []color.RGB24 {
	return mediancut.Quantize(colors, paletteSize)
}

// QuantizeOctree runs the octree engine directly.
func QuantizeOctree(colors []color.RGB24, paletteSize int) []color.RGB24 {
	return octree.Quantize(colors, paletteSize)
}
