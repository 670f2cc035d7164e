// Licensed under the MIT License. See LICENSE file in the project root for details.

package semistable

import (
	"github.com/joaquintides/semistable-vector/internal/diagnostics"
	"github.com/joaquintides/semistable-vector/internal/epoch"
	"github.com/joaquintides/semistable-vector/internal/storage"
)

// Vector is a semistable contiguous sequence container of T. The zero
// value is not usable; construct one with New, NewWithCapacity,
// NewFromSlice, or NewWithSize.
type Vector[T any] struct {
	storage storage.Storage[T]
	chain   *epoch.Chain[T]
	checked bool
}

// New creates an empty Vector.
func New[T any]() *Vector[T] {
	v := &Vector[T]{}
	v.chain = epoch.NewChain[T](v.storage.Data())
	return v
}

// NewWithCapacity creates an empty Vector that can hold at least n
// elements before its first reallocation.
func NewWithCapacity[T any](n int) *Vector[T] {
	v := New[T]()
	v.storage.Reserve(n)
	return v
}

// NewWithSize creates a Vector of n elements, each equal to v.
func NewWithSize[T any](n int, value T) *Vector[T] {
	v := New[T]()
	v.storage.ResizeWithValue(n, value)
	v.emit(v.storage.Len()-n, n)
	return v
}

// NewFromSlice creates a Vector holding a copy of s.
func NewFromSlice[T any](s []T) *Vector[T] {
	v := New[T]()
	if len(s) > 0 {
		v.storage.InsertSlice(0, s)
		v.emit(0, len(s))
	}
	return v
}

// EnableInvariantChecking turns the optional invariant checker (spec
// §4.5) on or off. Disabled by default: the checks are cheap but are a
// debugging aid, not something production callers should pay for by
// default.
func (v *Vector[T]) EnableInvariantChecking(enabled bool) {
	v.checked = enabled
}

// emit is the container's sole bridge into the epoch chain: every
// mutating operation calls it once, after performing its storage
// mutation, with the epoch parameters from the per-operation table.
// InsertN, InsertSlice, AppendSlice and EraseRange skip it when they
// leave the storage unchanged.
func (v *Vector[T]) emit(index, offset int) {
	v.chain.Emit(v.storage.Data(), index, offset)
}

func (v *Vector[T]) checkPre() {
	if v.checked {
		diagnostics.Check[T](v.chain, &v.storage)
	}
}

func (v *Vector[T]) checkPost() {
	if v.checked {
		diagnostics.Check[T](v.chain, &v.storage)
	}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.storage.Len() }

// Cap returns the current capacity.
func (v *Vector[T]) Cap() int { return v.storage.Cap() }

// Empty reports whether the Vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.storage.Empty() }

// Data returns the live backing slice. Its address is only valid until
// the next reallocating mutation; see the package doc's Dangers and
// Warnings.
func (v *Vector[T]) Data() []T { return v.storage.Data() }

// At returns the element at index i, or ErrOutOfRange if i >= Len().
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.storage.Len() {
		var zero T
		return zero, outOfRange(i, v.storage.Len())
	}
	return v.storage.At(i), nil
}

// Get returns the element at index i. i must be in [0, Len()); behavior
// is undefined otherwise, matching the unchecked-subscript convention of
// a classical sequence container.
func (v *Vector[T]) Get(i int) T { return v.storage.At(i) }

// Set overwrites the element at index i. i must be in [0, Len()).
func (v *Vector[T]) Set(i int, value T) { v.storage.Set(i, value) }

// Front returns the first element. The Vector must not be empty.
func (v *Vector[T]) Front() T { return v.storage.Front() }

// Back returns the last element. The Vector must not be empty.
func (v *Vector[T]) Back() T { return v.storage.Back() }

// Begin returns an iterator to the first element (or to End if empty).
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{idx: 0, held: epoch.Retain(v.chain.Current())}
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{idx: v.storage.Len(), held: epoch.Retain(v.chain.Current())}
}

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: v.End()}
}

// REnd returns a reverse iterator one before the first element.
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: v.Begin()}
}

// Iter returns an iterator to the element currently at position i, i.e.
// Begin().Add(i). i must be in [0, Len()].
func (v *Vector[T]) Iter(i int) Iterator[T] {
	return Iterator[T]{idx: i, held: epoch.Retain(v.chain.Current())}
}
