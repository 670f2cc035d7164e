// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package diagnostics implements the optional invariant checker described
// for the semistable-vector container: a cheap self-check, run on entry
// and exit of every public mutating operation when enabled, that a bug in
// the epoch-chain bookkeeping would trip. A violation indicates an
// internal bug, not a user error, so Check panics rather than returning
// an error.
package diagnostics

import (
	"fmt"

	"github.com/joaquintides/semistable-vector/internal/epoch"
)

// Chain is the subset of *epoch.Chain's surface the checker needs.
type Chain[T any] interface {
	Current() epoch.Handle[T]
	Previous() epoch.Handle[T]
	TwoBack() epoch.Handle[T]
}

// DataSource supplies the storage buffer the chain's current epoch must
// agree with (I1).
type DataSource[T any] interface {
	Data() []T
}

// Check asserts invariants I1-I3 from the container's data-model
// contract:
//
//	I1: pe.data == base(storage) and pe.next == nil.
//	I2: pe1 == nil or pe1.next == pe.
//	I3: pe2 == nil or (pe1 != nil and pe2.next == pe1).
//
// It panics with a description of the first violation found.
func Check[T any](c Chain[T], storage DataSource[T]) {
	pe := c.Current()
	pe1 := c.Previous()
	pe2 := c.TwoBack()

	if pe.IsNil() {
		panic("diagnostics: I1 violated: current epoch is nil")
	}
	if !samePointer(pe.Data(), storage.Data()) {
		panic(fmt.Sprintf("diagnostics: I1 violated: pe.data (len %d) != base(storage) (len %d)",
			len(pe.Data()), len(storage.Data())))
	}
	if !pe.Next().IsNil() {
		panic("diagnostics: I1 violated: pe.next is not nil")
	}

	if !pe1.IsNil() && !pe1.Next().Equal(pe) {
		panic("diagnostics: I2 violated: pe1.next != pe")
	}

	if !pe2.IsNil() {
		if pe1.IsNil() {
			panic("diagnostics: I3 violated: pe2 is non-nil but pe1 is nil")
		}
		if !pe2.Next().Equal(pe1) {
			panic("diagnostics: I3 violated: pe2.next != pe1")
		}
	}
}

// samePointer reports whether a and b share the same backing array
// starting address by comparing their first elements' addresses when
// both are non-empty. Two empty slices, or one nil and one empty, are
// considered the same for I1's purposes: a freshly-grown empty buffer has
// no addressable element to compare, and I1 only cares that pe.data
// tracks storage's base across reallocation, which for a zero-length
// buffer is vacuously true.
func samePointer[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == 0 && len(b) == 0
	}
	return &a[0] == &b[0]
}
