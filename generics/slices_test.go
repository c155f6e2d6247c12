package generics

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type person struct {
	Name string
	Age  int
}

var people = []person{
	{Name: "Alice", Age: 25},
	{Name: "Bob", Age: 30},
	{Name: "Charlie", Age: 35},
}

func TestMapSlice(t *testing.T) {
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, MapSlice(people, func(p person) string { return p.Name }))
	assert.Equal(t, []int{}, MapSlice([]string{}, func(s string) int { return len(s) }))
}

func TestCompactAndFlatMapSlice(t *testing.T) {
	fibs := []int{0, 1, 1, 2, 3, 5}

	big := CompactMapSlice(fibs, func(n int) (string, bool) {
		return strconv.Itoa(n), n > 1
	})
	assert.Equal(t, []string{"2", "3", "5"}, big)

	repeated := FlatMapSlice(fibs, func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = n
		}
		return out
	})
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3, 3, 5, 5, 5, 5, 5}, repeated)
}

func TestReduceSlice(t *testing.T) {
	assert.Equal(t, 90, ReduceSlice(people, func(total int, p person) int { return total + p.Age }, 0))
	assert.Equal(t, 7, ReduceSlice([]person{}, func(total int, p person) int { return total + p.Age }, 7))
	assert.Equal(t, 3628800, ReduceSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, func(product int, n int) int { return product * n }, 1))
}

func TestReduceSliceInto(t *testing.T) {
	byAgeGroup := ReduceSliceInto(people, map[string][]person{}, func(groups *map[string][]person, p person) {
		group := "mature"
		if p.Age < 30 {
			group = "young"
		}
		(*groups)[group] = append((*groups)[group], p)
	})
	assert.Equal(t, map[string][]person{
		"young":  {people[0]},
		"mature": {people[1], people[2]},
	}, byAgeGroup)
}

func TestGroupSlice(t *testing.T) {
	groups := GroupSlice([]string{"apple", "avocado", "banana", "blueberry", "cherry"}, func(s string) byte { return s[0] })
	assert.Equal(t, map[byte][]string{
		'a': {"apple", "avocado"},
		'b': {"banana", "blueberry"},
		'c': {"cherry"},
	}, groups)
}

func TestIterateSlice(t *testing.T) {
	var b strings.Builder
	IterateSlice([]string{"x", "y"}, func(s string) { b.WriteString(s) })
	IterateSliceIndexed([]string{"x", "y"}, func(i int, s string) { b.WriteString(strconv.Itoa(i) + s) })
	assert.Equal(t, "xy0x1y", b.String())
}

func TestIndicesWhere(t *testing.T) {
	vowels := map[rune]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true}
	indices := IndicesWhere([]rune("Fresh cheese in a breeze"), func(r rune) bool { return vowels[r] })
	assert.Equal(t, []int{2, 8, 9, 11, 13, 16, 20, 21, 23}, indices)
	assert.Equal(t, []int{}, IndicesWhere([]int{1, 2, 3}, func(int) bool { return false }))
}

func TestAllSatisfy(t *testing.T) {
	fruits := []string{"Apple", "Banana", "Cherry", "Date"}
	assert.True(t, AllSatisfy(fruits, func(s string) bool { return len(s) > 3 }))
	assert.False(t, AllSatisfy(fruits, func(s string) bool { return len(s) > 4 }))
	assert.True(t, AllSatisfy([]int{}, func(n int) bool { return n > 100 }))
}
