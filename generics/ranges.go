package generics

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Comparer is implemented by types with their own ordering, returning negative, zero or positive like strings.Compare
type Comparer[T any] interface {
	Compare(other T) int
}

// ClosedRange is an interval including both of its bounds
//
// Ranges are created by one of the constructors below. The zero value is an empty range that contains nothing.
type ClosedRange[T any] struct {
	lower   T
	upper   T
	compare func(a, b T) int
}

// NewClosedRange creates a range from lower to upper, both inclusive
func NewClosedRange[T any](lower, upper T, compare func(a, b T) int) (ClosedRange[T], error) {
	if compare == nil {
		return ClosedRange[T]{}, fmt.Errorf("invalid range: missing compare function")
	}
	if compare(lower, upper) > 0 {
		return ClosedRange[T]{}, fmt.Errorf("invalid range: lower bound %v is greater than upper bound %v", lower, upper)
	}
	return ClosedRange[T]{lower: lower, upper: upper, compare: compare}, nil
}

// OrderedRange creates a range for numbers or strings
func OrderedRange[T constraints.Ordered](lower, upper T) (ClosedRange[T], error) {
	return NewClosedRange(lower, upper, compareOrdered[T])
}

// ComparableRange creates a range for types implementing Comparer
func ComparableRange[T Comparer[T]](lower, upper T) (ClosedRange[T], error) {
	return NewClosedRange(lower, upper, func(a, b T) int {
		return a.Compare(b)
	})
}

func (r ClosedRange[T]) Lower() T {
	return r.lower
}

func (r ClosedRange[T]) Upper() T {
	return r.upper
}

// Contains checks whether the value lies within the range, bounds included
func (r ClosedRange[T]) Contains(value T) bool {
	if r.IsEmpty() {
		return false
	}
	return r.compare(r.lower, value) <= 0 && r.compare(value, r.upper) <= 0
}

// Clamp limits the value to the range, an empty range returns the value as is
func (r ClosedRange[T]) Clamp(value T) T {
	switch {
	case r.IsEmpty():
		return value
	case r.compare(value, r.lower) < 0:
		return r.lower
	case r.compare(value, r.upper) > 0:
		return r.upper
	default:
		return value
	}
}

// IsEmpty is true only for the zero value, a constructed range contains at least its bounds
func (r ClosedRange[T]) IsEmpty() bool {
	return r.compare == nil
}

func (r ClosedRange[T]) String() string {
	if r.IsEmpty() {
		return "(empty)"
	}
	return fmt.Sprintf("%v...%v", r.lower, r.upper)
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
