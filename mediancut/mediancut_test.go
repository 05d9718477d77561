// Copyright 2026 Arne Drobrowski.
// Licensed under MIT license.  See "license" file in this source tree.

package mediancut

import (
	"reflect"
	"testing"

	"github.com/edobrowo/paletter/color"
)

func fixtureColors() []color.RGB24 {
	return []color.RGB24{
		color.New(254, 182, 47),
		color.New(147, 190, 63),
		color.New(144, 129, 150),
		color.New(247, 200, 162),
		color.New(209, 78, 31),
		color.New(205, 70, 224),
		color.New(169, 152, 157),
		color.New(5, 13, 222),
		color.New(78, 208, 20),
		color.New(98, 205, 81),
		color.New(196, 126, 248),
		color.New(240, 61, 100),
		color.New(85, 254, 97),
		color.New(191, 236, 235),
		color.New(47, 56, 6),
		color.New(81, 67, 179),
		color.New(172, 69, 24),
		color.New(181, 63, 74),
		color.New(95, 229, 108),
		color.New(154, 248, 89),
	}
}

func TestQuantizeScenario5K8(t *testing.T) {
	want := []color.RGB24{
		color.New(47, 56, 6),
		color.New(147, 190, 63),
		color.New(5, 13, 222),
		color.New(113, 98, 165),
		color.New(102, 229, 79),
		color.New(211, 91, 55),
		color.New(201, 98, 236),
		color.New(202, 196, 185),
	}
	got := Quantize(fixtureColors(), 8)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Quantize(fixture, 8) = %v, want %v", got, want)
	}
}

func TestQuantizeK16(t *testing.T) {
	want := []color.RGB24{
		color.New(47, 56, 6),
		color.New(147, 190, 63),
		color.New(5, 13, 222),
		color.New(81, 67, 179),
		color.New(144, 129, 150),
		color.New(88, 207, 51),
		color.New(85, 254, 97),
		color.New(125, 239, 99),
		color.New(211, 62, 87),
		color.New(172, 69, 24),
		color.New(209, 78, 31),
		color.New(254, 182, 47),
		color.New(201, 98, 236),
		color.New(169, 152, 157),
		color.New(247, 200, 162),
		color.New(191, 236, 235),
	}
	got := Quantize(fixtureColors(), 16)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Quantize(fixture, 16) = %v, want %v", got, want)
	}
}

func TestQuantizeK1ReturnsOverallAverage(t *testing.T) {
	colors := fixtureColors()
	want := color.Average(fixtureColors())
	got := Quantize(colors, 1)
	if len(got) != 1 || got[0] != want {
		t.Errorf("Quantize(fixture, 1) = %v, want [%v]", got, want)
	}
}

func TestQuantizeAllIdenticalProducesKCopies(t *testing.T) {
	colors := make([]color.RGB24, 10)
	for i := range colors {
		colors[i] = color.New(9, 9, 9)
	}
	got := Quantize(colors, 4)
	if len(got) != 4 {
		t.Fatalf("len(Quantize) = %d, want 4", len(got))
	}
	for _, c := range got {
		if c != color.New(9, 9, 9) {
			t.Errorf("got %v, want all (9,9,9)", c)
		}
	}
}

func TestQuantizeSingleColorInput(t *testing.T) {
	colors := []color.RGB24{color.New(1, 2, 3)}
	got := Quantize(colors, 1)
	if len(got) != 1 || got[0] != color.New(1, 2, 3) {
		t.Errorf("Quantize(single, 1) = %v, want [(1,2,3)]", got)
	}
}
