package generics

import (
	"fmt"
	"iter"
)

// ScanError reports the position at which a combine function failed during ScanSliceE
type ScanError struct {
	Index int
	Err   error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan failed at index %d: %v", e.Index, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Scan returns a sequence of running accumulations over seq.
//
// The n-th value is the left fold of initial with the first n+1 elements of seq. The initial value itself is never
// yielded, so an empty seq results in an empty sequence.
//
// The returned sequence is lazy and starts over from initial each time it's iterated.
func Scan[E any, R any](
	seq iter.Seq[E],
	initial R,
	combine func(accumulated R, item E) R,
) iter.Seq[R] {
	return func(yield func(R) bool) {
		running := initial
		for item := range seq {
			running = combine(running, item)
			if !yield(running) {
				return
			}
		}
	}
}

// ScanSlice returns the running accumulations over the given slice, with the same length as the slice
//
// e.g. ScanSlice([]int{1, 2, 3, 4}, 0, add) => [1, 3, 6, 10]
func ScanSlice[E any, R any](
	list []E,
	initial R,
	combine func(accumulated R, item E) R,
) []R {
	output := make([]R, len(list))
	running := initial
	for index, item := range list {
		running = combine(running, item)
		output[index] = running
	}
	return output
}

// ScanSliceE is ScanSlice with a combine function that may fail.
//
// The first failure stops the scan: no further items are visited and the error is returned as *ScanError with the
// failed index. Accumulations computed before the failure are discarded.
func ScanSliceE[E any, R any](
	list []E,
	initial R,
	combine func(accumulated R, item E) (R, error),
) ([]R, error) {
	output := make([]R, len(list))
	running := initial
	for index, item := range list {
		next, err := combine(running, item)
		if err != nil {
			return nil, &ScanError{Index: index, Err: err}
		}
		running = next
		output[index] = running
	}
	return output, nil
}

// Fold reduces seq into a single result, starting from initial
//
// Fold of an empty sequence is initial. For a non-empty seq the result equals the last value of Scan.
func Fold[E any, R any](
	seq iter.Seq[E],
	initial R,
	combine func(accumulated R, item E) R,
) R {
	result := initial
	for item := range seq {
		result = combine(result, item)
	}
	return result
}
