// Copyright 2026 Arne Drobrowski.
// Licensed under MIT license.  See "license" file in this source tree.

package color

import "sort"

// RadixSortByChannel stably sorts colors in place by the given
// channel using a single-pass 256-bucket counting sort: O(n+256),
// stable (insertion order within a bucket is preserved).
func RadixSortByChannel(colors []RGB24, ch Channel) {
	var buckets [256][]RGB24
	for _, c := range colors {
		v := c.At(ch)
		buckets[v] = append(buckets[v], c)
	}
	i := 0
	for _, bucket := range buckets {
		for _, c := range bucket {
			colors[i] = c
			i++
		}
	}
}

// ByHSV adapts a []RGB24 to sort.Interface, ordering colors by the
// HSV projection of RGB24.Less. Use sort.Stable to preserve the
// relative order of colors that share an HSV triple.
type ByHSV []RGB24

func (s ByHSV) Len() int           { return len(s) }
func (s ByHSV) Less(i, j int) bool { return s[i].Less(s[j]) }
func (s ByHSV) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// SortStable sorts colors by the HSV projection, stably.
func SortStable(colors []RGB24) {
	sort.Stable(ByHSV(colors))
}
