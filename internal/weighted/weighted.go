// Package weighted provides weighted-choice lists used by vehicle groups and
// spawn tables. Two weight domains exist: exact integer weights (vehicle
// groups) and real-valued weights (spawn function tables).
//
// Lists are built once during data load via Add and must not be mutated after
// the first Pick. They carry no locking.
package weighted

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrEmpty is returned by Pick on a list with no selectable entries.
var ErrEmpty = errors.New("weighted: pick from empty list")

// IntList is a weighted list with exact integer weights.
type IntList[T any] struct {
	values  []T
	weights []int
	total   int
}

// Add appends a value with the given weight.
// Non-positive weights are rejected: a zero-weight entry would never be
// selectable and almost always indicates bad data.
func (l *IntList[T]) Add(value T, weight int) error {
	if weight <= 0 {
		return fmt.Errorf("weighted: weight must be positive, got %d", weight)
	}
	l.values = append(l.values, value)
	l.weights = append(l.weights, weight)
	l.total += weight
	return nil
}

// Pick draws one entry with probability proportional to its weight.
// Returns ErrEmpty if the list has no entries.
func (l *IntList[T]) Pick(rng *rand.Rand) (*T, error) {
	if l.total <= 0 {
		return nil, ErrEmpty
	}
	draw := rng.IntN(l.total)
	for i, w := range l.weights {
		draw -= w
		if draw < 0 {
			return &l.values[i], nil
		}
	}
	// Unreachable: weights sum to total.
	return nil, ErrEmpty
}

// Len returns the number of entries.
func (l *IntList[T]) Len() int {
	return len(l.values)
}

// TotalWeight returns the sum of all entry weights.
func (l *IntList[T]) TotalWeight() int {
	return l.total
}

// FloatList is a weighted list with real-valued weights.
type FloatList[T any] struct {
	values  []T
	weights []float64
	total   float64
}

// Add appends a value with the given weight. Weight must be > 0.
func (l *FloatList[T]) Add(value T, weight float64) error {
	if weight <= 0 {
		return fmt.Errorf("weighted: weight must be positive, got %g", weight)
	}
	l.values = append(l.values, value)
	l.weights = append(l.weights, weight)
	l.total += weight
	return nil
}

// Pick draws one entry with probability proportional to its weight.
// Returns ErrEmpty if the list has no entries.
func (l *FloatList[T]) Pick(rng *rand.Rand) (*T, error) {
	if l.total <= 0 {
		return nil, ErrEmpty
	}
	draw := rng.Float64() * l.total
	for i, w := range l.weights {
		draw -= w
		if draw < 0 {
			return &l.values[i], nil
		}
	}
	// Float rounding can leave draw at exactly the upper bound; the last
	// entry takes it.
	return &l.values[len(l.values)-1], nil
}

// Len returns the number of entries.
func (l *FloatList[T]) Len() int {
	return len(l.values)
}

// TotalWeight returns the sum of all entry weights.
func (l *FloatList[T]) TotalWeight() float64 {
	return l.total
}
