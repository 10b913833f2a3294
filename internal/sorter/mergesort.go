// Package sorter provides a stable, descending merge sort over arbitrary
// element types ordered by a derived key.
package sorter

import "cmp"

// SortDesc returns a new slice holding the elements of items in
// non-increasing key order. Elements with equal keys keep their input
// order. items is not modified.
func SortDesc[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	if key == nil {
		panic("sorter: nil key function")
	}
	out := make([]T, len(items))
	copy(out, items)
	return mergeSort(out, key)
}

// SortDescOrdered sorts ordered values by themselves.
func SortDescOrdered[T cmp.Ordered](items []T) []T {
	return SortDesc(items, func(v T) T { return v })
}

func mergeSort[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	if len(items) <= 1 {
		return items
	}

	mid := len(items) / 2
	left := mergeSort(items[:mid], key)
	right := mergeSort(items[mid:], key)

	return merge(left, right, key)
}

// merge combines two halves already sorted descending. The left head wins
// ties, which is what keeps the sort stable.
func merge[T any, K cmp.Ordered](left, right []T, key func(T) K) []T {
	merged := make([]T, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if key(left[i]) >= key(right[j]) {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}

	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)

	return merged
}
