package generics

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pair is a key-value tuple, e.g. an entry to be collected into a map
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// MakePair creates a Pair
func MakePair[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Resolver decides the value kept when two values share the same key.
//
// "existing" is the value already collected and "incoming" is the one being added.
type Resolver[V any] func(existing, incoming V) V

// KeepFirst resolves key collisions by keeping the value seen first
func KeepFirst[V any]() Resolver[V] {
	return func(existing, _ V) V {
		return existing
	}
}

// KeepLast resolves key collisions by keeping the value seen last
func KeepLast[V any]() Resolver[V] {
	return func(_, incoming V) V {
		return incoming
	}
}

// Add resolves key collisions by summing values
func Add[V constraints.Integer | constraints.Float]() Resolver[V] {
	return func(existing, incoming V) V {
		return existing + incoming
	}
}

// PairsToMap collects pairs into a map in order, using resolve for duplicate keys
//
// A nil resolve means keys are required to be unique: the function panics on the first duplicate.
func PairsToMap[K comparable, V any](
	pairs []Pair[K, V],
	resolve Resolver[V],
) map[K]V {
	result := make(map[K]V, len(pairs))
	for _, pair := range pairs {
		existing, exists := result[pair.Key]
		if !exists {
			result[pair.Key] = pair.Value
			continue
		}
		if resolve == nil {
			panic(fmt.Sprintf("duplicate key in pairs: %v", pair.Key))
		}
		result[pair.Key] = resolve(existing, pair.Value)
	}
	return result
}

// MergeMaps merges two maps into a new one, using resolve for keys present in both
//
// The given maps are not modified. A nil resolve keeps values from "other".
func MergeMaps[K comparable, V any](
	base map[K]V,
	other map[K]V,
	resolve Resolver[V],
) map[K]V {
	if resolve == nil {
		resolve = KeepLast[V]()
	}
	result := make(map[K]V, len(base)+len(other))
	for key, value := range base {
		result[key] = value
	}
	for key, value := range other {
		if existing, exists := result[key]; exists {
			result[key] = resolve(existing, value)
		} else {
			result[key] = value
		}
	}
	return result
}
