package generics

// GroupConsecutive splits the slice into runs of adjacent equal items, preserving order
//
// e.g. [1, 2, 2, 2, 3, 4, 4] => [[1], [2, 2, 2], [3], [4, 4]]
//
// Equal items separated by other items end up in different groups.
func GroupConsecutive[T comparable](list []T) [][]T {
	return GroupConsecutiveFunc(list, func(previous, current T) bool {
		return previous == current
	})
}

// GroupConsecutiveFunc is GroupConsecutive with a custom equivalence between an item and its predecessor
//
// Groups are newly allocated and never share memory with the input slice.
func GroupConsecutiveFunc[T any](
	list []T,
	same func(previous, current T) bool,
) [][]T {
	groups := make([][]T, 0)
	if len(list) == 0 {
		return groups
	}

	current := []T{list[0]}
	for index := 1; index < len(list); index++ {
		item := list[index]
		if same(list[index-1], item) {
			current = append(current, item)
			continue
		}
		groups = append(groups, current)
		current = []T{item}
	}
	return append(groups, current)
}
