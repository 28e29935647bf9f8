// Package selection places ranked windows of a slice without sorting all of it.
//
// Select is an nth-element: it moves the element of a given rank into place
// and partitions the rest around it. PartialSort then orders just the window
// that follows. Together they return ranks [from, from+count) in
// O(n + k log k) instead of the O(n log n) of a full sort.
//
// Both functions permute elements outside the requested window. Callers must
// not rely on the order of anything they did not ask for.
package selection

import (
	"math/bits"
	"slices"
)

// insertionThreshold is the range size below which insertion sort finishes
// the job.
const insertionThreshold = 12

// Select reorders s so that s[k] holds the element that would be at index k
// if s were sorted by cmp. Every element of s[:k] compares <= s[k] and every
// element of s[k+1:] compares >= s[k]. Out of range k is a no-op.
func Select[S ~[]E, E any](s S, k int, cmp func(a, b E) int) {
	if k < 0 || k >= len(s) {
		return
	}
	lo, hi := 0, len(s)
	budget := 2 * bits.Len(uint(len(s)))
	for hi-lo > insertionThreshold {
		if budget == 0 {
			// Too many unbalanced partitions: finish deterministically.
			slices.SortFunc(s[lo:hi], cmp)
			return
		}
		budget--

		lt, gt := partition(s, lo, hi, cmp)
		switch {
		case k < lt:
			hi = lt
		case k >= gt:
			lo = gt
		default:
			// k landed among the elements equal to the pivot.
			return
		}
	}
	insertionSort(s[lo:hi], cmp)
}

// PartialSort arranges s[lo:hi] to hold the hi-lo smallest elements of s[lo:]
// in sorted order. Elements of s[hi:] are left in unspecified order and
// s[:lo] is untouched. Bounds are clamped to the slice.
func PartialSort[S ~[]E, E any](s S, lo, hi int, cmp func(a, b E) int) {
	lo = max(lo, 0)
	hi = min(hi, len(s))
	if lo >= hi {
		return
	}
	tail := s[lo:]
	n := hi - lo
	if n < len(tail) {
		Select(tail, n-1, cmp)
	}
	slices.SortFunc(tail[:n], cmp)
}

// Window places the 1-based rank window [from, from+count-1] of s in sorted
// order and returns its bounds as a half-open index range. The window is
// clamped to the end of s. An empty window (from < 1, from > len(s) or
// count <= 0) returns lo == hi and leaves s untouched.
func Window[S ~[]E, E any](s S, from, count int, cmp func(a, b E) int) (lo, hi int) {
	if from < 1 || from > len(s) || count <= 0 {
		return 0, 0
	}
	lo = from - 1
	// Compare against the remaining length to avoid overflow for huge counts.
	hi = len(s)
	if count < hi-lo {
		hi = lo + count
	}
	Select(s, lo, cmp)
	PartialSort(s, lo, hi, cmp)
	return lo, hi
}

// partition performs a three-way partition of s[lo:hi] around a
// median-of-three pivot. On return s[lo:lt] < pivot, s[lt:gt] == pivot and
// s[gt:hi] > pivot. The pivot is taken from the range, so lt < gt.
func partition[S ~[]E, E any](s S, lo, hi int, cmp func(a, b E) int) (lt, gt int) {
	pivot := s[medianOfThree(s, lo, lo+(hi-lo)/2, hi-1, cmp)]
	lt, gt = lo, hi
	for i := lo; i < gt; {
		switch c := cmp(s[i], pivot); {
		case c < 0:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case c > 0:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}
	return lt, gt
}

// medianOfThree returns whichever of the indexes a, b, c holds the median
// value.
func medianOfThree[S ~[]E, E any](s S, a, b, c int, cmp func(a, b E) int) int {
	if cmp(s[b], s[a]) < 0 {
		a, b = b, a
	}
	if cmp(s[c], s[b]) < 0 {
		b = c
		if cmp(s[b], s[a]) < 0 {
			b = a
		}
	}
	return b
}

func insertionSort[S ~[]E, E any](s S, cmp func(a, b E) int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && cmp(s[j], s[j-1]) < 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
