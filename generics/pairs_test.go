package generics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var letterPairs = []Pair[string, int]{
	{"a", 1}, {"b", 2}, {"a", 3}, {"b", 4}, {"a", 5},
}

func TestPairsToMap(t *testing.T) {
	assert.Equal(t, map[string]int{"a": 9, "b": 6}, PairsToMap(letterPairs, Add[int]()))
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, PairsToMap(letterPairs, KeepFirst[int]()))
	assert.Equal(t, map[string]int{"a": 5, "b": 4}, PairsToMap(letterPairs, KeepLast[int]()))
	assert.Equal(t, map[string]int{}, PairsToMap([]Pair[string, int]{}, KeepLast[int]()))
}

func TestPairsToMapCustomResolverOrder(t *testing.T) {
	seen := make([][2]int, 0)
	PairsToMap(letterPairs, func(existing, incoming int) int {
		seen = append(seen, [2]int{existing, incoming})
		return existing + incoming
	})
	assert.Equal(t, [][2]int{{1, 3}, {2, 4}, {4, 5}}, seen)
}

func TestPairsToMapUniqueKeys(t *testing.T) {
	assert.Equal(t, map[string]int{"x": 1, "y": 2}, PairsToMap([]Pair[string, int]{MakePair("x", 1), MakePair("y", 2)}, nil))
	assert.PanicsWithValue(t, "duplicate key in pairs: a", func() {
		PairsToMap(letterPairs, nil)
	})
}

func TestMergeMaps(t *testing.T) {
	d1 := map[string]float64{"weight": 19, "height": 170}
	d2 := map[string]float64{"weight": 20, "speed": 3.5}

	assert.Equal(t, map[string]float64{"weight": 19, "height": 170, "speed": 3.5}, MergeMaps(d1, d2, KeepFirst[float64]()))
	assert.Equal(t, map[string]float64{"weight": 20, "height": 170, "speed": 3.5}, MergeMaps(d1, d2, nil))
	assert.Equal(t, map[string]float64{"weight": 39, "height": 170, "speed": 3.5}, MergeMaps(d1, d2, Add[float64]()))

	assert.Equal(t, map[string]float64{"weight": 19, "height": 170}, d1, "inputs untouched")
	assert.Equal(t, map[string]float64{"weight": 20, "speed": 3.5}, d2, "inputs untouched")
}
