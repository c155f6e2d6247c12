package generics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupConsecutive(t *testing.T) {
	cases := []struct {
		input    []int
		expected [][]int
	}{
		{[]int{1, 2, 2, 2, 3, 4, 4}, [][]int{{1}, {2, 2, 2}, {3}, {4, 4}}},
		{[]int{10, 20, 30, 10, 40, 40, 10, 20}, [][]int{{10}, {20}, {30}, {10}, {40, 40}, {10}, {20}}},
		{[]int{5}, [][]int{{5}}},
		{[]int{7, 7, 7}, [][]int{{7, 7, 7}}},
		{[]int{}, [][]int{}},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, GroupConsecutive(c.input), "input %v", c.input)
	}
}

func TestGroupConsecutiveDoesNotAlias(t *testing.T) {
	input := []int{1, 1, 2}
	groups := GroupConsecutive(input)
	groups[0][0] = 99
	assert.Equal(t, []int{1, 1, 2}, input)
}

func TestGroupConsecutiveFunc(t *testing.T) {
	words := []string{"Apple", "avocado", "Banana", "blueberry", "apricot"}
	groups := GroupConsecutiveFunc(words, func(previous, current string) bool {
		return strings.EqualFold(previous[:1], current[:1])
	})
	assert.Equal(t, [][]string{{"Apple", "avocado"}, {"Banana", "blueberry"}, {"apricot"}}, groups)
}
