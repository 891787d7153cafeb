package odr

import (
	"iter"
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Entry is a value keyed by the arc-length position where it starts to apply.
type Entry[T any] struct {
	Key   float64
	Value T
}

// StepFunc is a piecewise function of arc length. A query at s resolves to
// the entry with the greatest key not exceeding s. Queries before the first
// key resolve to the first entry.
//
// The zero value is an empty StepFunc. A StepFunc is immutable after
// construction and safe for concurrent use.
type StepFunc[T any] struct {
	keys   []float64
	values []T
}

// NewStepFunc returns a StepFunc of the given entries, whose keys must be
// finite and strictly increasing.
func NewStepFunc[T any](entries ...Entry[T]) (StepFunc[T], error) {
	f := StepFunc[T]{
		keys:   make([]float64, len(entries)),
		values: make([]T, len(entries)),
	}
	for i, e := range entries {
		if !finite(e.Key) {
			return StepFunc[T]{}, errors.Errorf("entry %d: key %g is not finite", i, e.Key)
		}
		if i > 0 && e.Key <= entries[i-1].Key {
			return StepFunc[T]{}, errors.Errorf("entry %d: key %g does not increase over previous key %g", i, e.Key, entries[i-1].Key)
		}
		f.keys[i] = e.Key
		f.values[i] = e.Value
	}
	return f, nil
}

// Len returns the number of entries.
func (f StepFunc[T]) Len() int { return len(f.keys) }

// At returns the i-th entry.
func (f StepFunc[T]) At(i int) Entry[T] {
	return Entry[T]{f.keys[i], f.values[i]}
}

// Index returns the index of the entry that applies at s, or -1 if f is
// empty.
func (f StepFunc[T]) Index(s float64) int {
	if len(f.keys) == 0 {
		return -1
	}
	// The first key greater than s, minus one.
	i := sort.Search(len(f.keys), func(i int) bool { return f.keys[i] > s }) - 1
	return max(i, 0)
}

// Lookup returns the entry that applies at s. ok is false if f is empty.
func (f StepFunc[T]) Lookup(s float64) (e Entry[T], ok bool) {
	i := f.Index(s)
	if i < 0 {
		return Entry[T]{}, false
	}
	return f.At(i), true
}

// Entries returns an iterator over the entries in increasing key order.
func (f StepFunc[T]) Entries() iter.Seq2[float64, T] {
	return func(yield func(float64, T) bool) {
		for i, k := range f.keys {
			if !yield(k, f.values[i]) {
				return
			}
		}
	}
}

// finite reports whether none of vs is NaN or infinite.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
