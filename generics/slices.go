package generics

import (
	"github.com/samber/lo"
)

// IterateSlice calls the given func for each value in the given slice
func IterateSlice[T any](
	list []T, action func(item T),
) {
	for _, item := range list {
		action(item)
	}
}

// IterateSliceIndexed calls the given func for each of (index, value) pair in the given slice
func IterateSliceIndexed[T any](
	list []T,
	action func(index int, item T),
) {
	for index, item := range list {
		action(index, item)
	}
}

// MapSlice transforms the given slice by mapping each item to something else
func MapSlice[T any, R any](
	list []T,
	mapper func(item T) R,
) []R {
	output := make([]R, len(list))
	for index, item := range list {
		output[index] = mapper(item)
	}
	return output
}

// CompactMapSlice maps each item and keeps only the results the mapper reports as ok
func CompactMapSlice[T any, R any](
	list []T,
	mapper func(item T) (R, bool),
) []R {
	output := make([]R, 0, len(list))
	for _, item := range list {
		if mapped, ok := mapper(item); ok {
			output = append(output, mapped)
		}
	}
	return output
}

// FlatMapSlice maps each item to a slice and concatenates the results in order
func FlatMapSlice[T any, R any](
	list []T,
	mapper func(item T) []R,
) []R {
	output := make([]R, 0, len(list))
	for _, item := range list {
		output = append(output, mapper(item)...)
	}
	return output
}

// ReduceSlice reduces the given slice into a single result, starting from initial
func ReduceSlice[T any, R any](
	list []T,
	reducer func(accumulated R, item T) R,
	initial R,
) R {
	result := initial
	for _, item := range list {
		result = reducer(result, item)
	}
	return result
}

// ReduceSliceInto reduces the given slice by updating the accumulated result in-place
//
// It's preferred over ReduceSlice when the result is a map or other container that would be expensive to copy.
func ReduceSliceInto[T any, R any](
	list []T,
	initial R,
	update func(accumulated *R, item T),
) R {
	result := initial
	for _, item := range list {
		update(&result, item)
	}
	return result
}

// GroupSlice groups items by the key returned from getKey, preserving the order of items inside each group
func GroupSlice[T any, K comparable](
	list []T,
	getKey func(item T) K,
) map[K][]T {
	return lo.GroupBy(list, getKey)
}

// IndicesWhere returns the ascending positions of items matching the predicate
func IndicesWhere[T any](
	list []T,
	predicate func(item T) bool,
) []int {
	indices := make([]int, 0)
	for index, item := range list {
		if predicate(item) {
			indices = append(indices, index)
		}
	}
	return indices
}

// AllSatisfy checks whether every item matches the predicate. It's true for empty slices.
func AllSatisfy[T any](
	list []T,
	predicate func(item T) bool,
) bool {
	for _, item := range list {
		if !predicate(item) {
			return false
		}
	}
	return true
}
