package generics

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencies(t *testing.T) {
	assert.Equal(t, map[string]int{"a": 3, "b": 1, "c": 2}, Frequencies([]string{"a", "b", "a", "c", "c", "a"}))
	assert.Equal(t, map[int]int{}, Frequencies([]int{}))
	assert.Equal(t, map[rune]int{'h': 1, 'e': 1, 'l': 2, 'o': 1}, RuneFrequencies("hello"))
}

func TestFrequenciesOf(t *testing.T) {
	input := []int{1, 2, 2, 3, 3, 3}
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 3}, FrequenciesOf(slices.Values(input)))
	assert.Equal(t, Frequencies(input), FrequenciesOf(slices.Values(input)))
}
