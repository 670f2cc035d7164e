// Licensed under the MIT License. See LICENSE file in the project root for details.

package semistable

import "github.com/joaquintides/semistable-vector/internal/epoch"

// Iterator is a random-access iterator into a Vector. It remains usable
// across mutations of the Vector it was obtained from — including
// reallocation, insertion and erasure elsewhere in the sequence — as long
// as the element it refers to has not itself been erased, overwritten, or
// moved past; see the package doc for the precise guarantee.
//
// The zero Iterator is not usable; obtain one from a Vector's Begin, End,
// Iter, or from a mutating operation's return value.
//
// An Iterator holds a reference into the owning Vector's epoch chain.
// Deriving a new, independently-usable Iterator — one that will be kept
// and dereferenced after the one it came from — must go through Add,
// Next, Prev, or Clone, never through a plain Go assignment of an
// Iterator value: a plain copy aliases the same chain reference, and
// walking one alias forward (via Deref/Pos/Close) does not keep the
// other alias's accounting consistent.
type Iterator[T any] struct {
	idx  int
	held epoch.Handle[T]
}

// update walks the iterator's held epoch forward to the owning Vector's
// current epoch, translating idx along the way, and returns the
// translated index. Every operation that observes idx or dereferences
// the iterator must call update first.
func (it *Iterator[T]) update() int {
	it.idx = epoch.Translate(it.idx, &it.held)
	return it.idx
}

// Deref returns a pointer to the referenced element. Dereferencing an
// iterator whose element has itself been erased is undefined behavior
// per the container's contract.
func (it *Iterator[T]) Deref() *T {
	it.update()
	data := it.held.Data()
	return &data[it.idx]
}

// At returns a pointer to the element n positions after the one this
// iterator refers to (subscript form).
func (it *Iterator[T]) At(n int) *T {
	it.update()
	data := it.held.Data()
	return &data[it.idx+n]
}

// Pos returns the iterator's current logical position — the index it
// would be read through if dereferenced right now.
func (it *Iterator[T]) Pos() int { return it.update() }

// peekPos returns it's translated position without mutating it or
// touching its reference count: it operates on a freshly retained copy
// of it.held so that the translation's internal chain-walking releases
// only that temporary copy's reference, never it's own.
func peekPos[T any](it Iterator[T]) int {
	h := epoch.Retain(it.held)
	idx := epoch.Translate(it.idx, &h)
	epoch.Release(&h)
	return idx
}

// Clone returns an independent copy of it, safe to keep and use after it
// itself is advanced, closed, or goes out of scope.
func (it *Iterator[T]) Clone() Iterator[T] {
	return Iterator[T]{idx: it.idx, held: epoch.Retain(it.held)}
}

// Add returns a new, independent iterator advanced by n (n may be
// negative), translated to the owning Vector's current epoch. It does
// not modify it.
func (it Iterator[T]) Add(n int) Iterator[T] {
	h := epoch.Retain(it.held)
	idx := epoch.Translate(it.idx, &h)
	return Iterator[T]{idx: idx + n, held: h}
}

// Next returns a new iterator advanced by one.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns a new iterator retreated by one.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Sub returns the signed distance from other to it: it.Pos() - other.Pos().
func (it Iterator[T]) Sub(other Iterator[T]) int {
	return peekPos(it) - peekPos(other)
}

// Equal reports whether it and other currently refer to the same
// position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return peekPos(it) == peekPos(other)
}

// Less reports whether it currently refers to an earlier position than
// other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return peekPos(it) < peekPos(other)
}

// DebugChainLen reports how many epoch-chain links separate this
// iterator's held epoch from the owning Vector's current tail. Intended
// for tests and diagnostics (P6, S5), not for use on any hot path.
func (it *Iterator[T]) DebugChainLen() int {
	return epoch.Len(it.held)
}

// Close releases the iterator's hold on its epoch record. It is
// optional: a Vector's epoch chain stays correct whether or not Close is
// called. Calling it promptly after an iterator is no longer needed lets
// the container's in-place record recycling (see internal/epoch) kick in
// sooner, keeping the chain's steady-state length bounded. An Iterator
// must not be used after Close.
func (it *Iterator[T]) Close() {
	epoch.Release(&it.held)
}

// CloseErr is an alias matching io.Closer's signature for use with defer
// in contexts that check the returned error; Close never fails.
func (it *Iterator[T]) CloseErr() error {
	it.Close()
	return nil
}

// ReverseIterator adapts an Iterator to walk the sequence back to front.
// Its referenced element is the one immediately before its underlying
// forward iterator's position, matching the classical
// reverse_iterator(it) == *(it - 1) convention. The same aliasing caveat
// documented on Iterator applies here.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Deref returns a pointer to the referenced element.
func (r *ReverseIterator[T]) Deref() *T { return r.base.At(-1) }

// Next returns a new reverse iterator advanced by one (towards the
// front of the sequence).
func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Add(-1)}
}

// Prev returns a new reverse iterator retreated by one (towards the back
// of the sequence).
func (r ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Add(1)}
}

// Add returns a new reverse iterator advanced by n.
func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Add(-n)}
}

// Base returns an independent copy of the underlying forward iterator
// (one past the element this reverse iterator refers to), matching the
// classical reverse_iterator::base() convention.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base.Clone() }

// Equal reports whether r and other currently refer to the same
// position.
func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

// Sub returns the signed distance from other to r.
func (r ReverseIterator[T]) Sub(other ReverseIterator[T]) int {
	return other.base.Sub(r.base)
}

// Close releases the underlying iterator's epoch hold; see
// Iterator.Close.
func (r *ReverseIterator[T]) Close() { r.base.Close() }
