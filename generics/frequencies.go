package generics

import (
	"iter"
)

// Frequencies counts the occurrences of each distinct item
func Frequencies[T comparable](list []T) map[T]int {
	pairs := MapSlice(list, func(item T) Pair[T, int] {
		return MakePair(item, 1)
	})
	return PairsToMap(pairs, Add[int]())
}

// FrequenciesOf counts the occurrences of each distinct item in a sequence
func FrequenciesOf[T comparable](seq iter.Seq[T]) map[T]int {
	return Fold(seq, make(map[T]int), func(counts map[T]int, item T) map[T]int {
		counts[item]++
		return counts
	})
}

// RuneFrequencies counts the occurrences of each rune in the string
func RuneFrequencies(s string) map[rune]int {
	return Frequencies([]rune(s))
}
