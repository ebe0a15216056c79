package sortable

import "slices"

// SortItems returns a copy of items with the element at from moved to to.
// A negative to counts from the end. The input is never modified; when from
// equals to, or an index is out of range, items is returned as is.
func SortItems[T any](items []T, from, to int) []T {
	if to < 0 {
		to += len(items)
	}
	if from == to || from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return items
	}
	out := slices.Clone(items)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, moved)
}

// RemoveItem returns a copy of items without the element at index.
func RemoveItem[T any](items []T, index int) []T {
	if index < 0 || index >= len(items) {
		return items
	}
	return slices.Delete(slices.Clone(items), index, index+1)
}
