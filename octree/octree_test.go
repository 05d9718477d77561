// Copyright 2026 Arne Drobrowski.
// Licensed under MIT license.  See "license" file in this source tree.

package octree

import (
	"reflect"
	"testing"

	"github.com/edobrowo/paletter/color"
)

func fixtureColors() []color.RGB24 {
	return []color.RGB24{
		color.New(0, 0, 0),
		color.New(53, 52, 12),
		color.New(201, 210, 204),
		color.New(55, 51, 13),
		color.New(221, 210, 204),
		color.New(201, 223, 199),
		color.New(201, 102, 204),
		color.New(23, 56, 124),
		color.New(43, 126, 241),
		color.New(24, 16, 123),
		color.New(23, 55, 101),
		color.New(2, 15, 0),
		color.New(2, 102, 150),
		color.New(200, 201, 201),
		color.New(100, 100, 100),
		color.New(0, 0, 200),
		color.New(255, 255, 255),
	}
}

func TestQuantizeScenario6KAtMost4(t *testing.T) {
	want := []color.RGB24{
		color.New(35, 43, 59),
		color.New(215, 219, 212),
		color.New(201, 102, 204),
		color.New(15, 76, 197),
	}
	for _, k := range []int{1, 2, 3, 4} {
		got := Quantize(fixtureColors(), k)
		if k == 4 && !reflect.DeepEqual(got, want) {
			t.Errorf("Quantize(fixture, 4) = %v, want %v", got, want)
		}
		if len(got) > k {
			t.Errorf("Quantize(fixture, %d) returned %d colors, want <= %d", k, len(got), k)
		}
	}
}

func TestQuantizeScenario6K5(t *testing.T) {
	want := []color.RGB24{
		color.New(35, 43, 59),
		color.New(215, 219, 212),
		color.New(201, 102, 204),
		color.New(43, 126, 241),
		color.New(2, 102, 150),
		color.New(0, 0, 200),
	}
	got := Quantize(fixtureColors(), 5)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Quantize(fixture, 5) = %v, want %v", got, want)
	}
}

func TestQuantizeNeverExceedsPaletteSize(t *testing.T) {
	colors := fixtureColors()
	for k := 1; k <= len(colors); k++ {
		got := Quantize(colors, k)
		if len(got) > k {
			t.Errorf("Quantize(fixture, %d) returned %d colors", k, len(got))
		}
	}
}

func TestQuantizeAllIdenticalProducesOneLeaf(t *testing.T) {
	colors := make([]color.RGB24, 12)
	for i := range colors {
		colors[i] = color.New(9, 9, 9)
	}
	got := Quantize(colors, 4)
	if len(got) != 1 || got[0] != color.New(9, 9, 9) {
		t.Errorf("Quantize(all-identical, 4) = %v, want [(9,9,9)]", got)
	}
}

func TestQuantizeDistinctPrefixesAtMostKIsNoOp(t *testing.T) {
	colors := []color.RGB24{
		color.New(0, 0, 0),
		color.New(255, 255, 255),
		color.New(128, 0, 0),
	}
	got := Quantize(colors, 8)
	if len(got) != 3 {
		t.Fatalf("len(Quantize) = %d, want 3", len(got))
	}
	seen := map[color.RGB24]bool{}
	for _, c := range got {
		seen[c] = true
	}
	for _, c := range colors {
		if !seen[c] {
			t.Errorf("expected %v to survive a no-op reduction", c)
		}
	}
}

func TestQuantizeSingleColorInput(t *testing.T) {
	colors := []color.RGB24{color.New(7, 8, 9)}
	got := Quantize(colors, 1)
	if len(got) != 1 || got[0] != color.New(7, 8, 9) {
		t.Errorf("Quantize(single, 1) = %v, want [(7,8,9)]", got)
	}
}

// P7: reduction never increases the live leaf count (a collapse lowers
// it by childCount-1), so a smaller K never yields more colors.
func TestReduceLeafCountMonotonicallyDecreases(t *testing.T) {
	colors := fixtureColors()
	prev := -1
	for k := len(colors); k >= 1; k-- {
		got := Quantize(colors, k)
		if prev != -1 && len(got) > prev {
			t.Errorf("leaf count increased going from K=%d (%d leaves) to K=%d (%d leaves)", k+1, prev, k, len(got))
		}
		prev = len(got)
	}
}
