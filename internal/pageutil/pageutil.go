// Package pageutil holds the stateless list helpers used when rendering a page:
// slicing a record list at an offset and producing page or row numbers.
package pageutil

// SliceFrom returns the items from offset start to the end of the list.
// Offsets below zero are treated as zero; offsets past the end yield an empty slice.
func SliceFrom[T any](items []T, start int) []T {
	start = clamp(start, 0, len(items))
	return items[start:]
}

// Page returns the items in [start, start+limit), clamped to the bounds of items.
// A non-positive limit yields an empty slice.
func Page[T any](items []T, start, limit int) []T {
	start = clamp(start, 0, len(items))
	if limit <= 0 {
		return items[start:start]
	}
	end := start + limit
	if end > len(items) || end < start {
		end = len(items)
	}
	return items[start:end]
}

// Sequence returns n consecutive integers beginning at first. Pass first=1 for
// page numbers and first=0 for zero-based indexes. n <= 0 yields an empty slice.
func Sequence(n, first int) []int {
	if n <= 0 {
		return []int{}
	}
	seq := make([]int, n)
	for i := range seq {
		seq[i] = first + i
	}
	return seq
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
