// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package epoch implements the epoch-chain indirection mechanism that gives
// a semistable sequence container its iterator-validity guarantee.
//
// An epoch record describes one mutation's effect on the index line: the
// buffer it mutated, the position at which the mutation took effect, and
// the signed shift applied to indices at or past that position. Records
// are linked forward, oldest first, into an append-only chain. An
// iterator holds an index and a handle to some record in the chain; to
// read through it, the iterator walks forward along the chain, applying
// each record's shift in turn, until it reaches the chain's current tail.
//
// # Key Features
//
//   - Append-only, forward-linked epoch chain with lazy, on-demand index
//     translation for iterators
//   - Reference-counted record handles so the container can tell, cheaply,
//     whether any iterator still depends on a given record
//   - In-place record recycling and two-record fusion, which together keep
//     the chain's steady-state length bounded regardless of how many
//     mutations have occurred, as long as no iterator is outstanding
//
// Records are never explicitly destroyed: when a record's count drops to
// zero, its next link is left in place and the garbage collector
// reclaims the record; no release walk over the forward chain is made.
//
// # Usage Examples
//
// A container owns a *Chain and calls Emit after every mutation of its
// storage:
//
//	c := epoch.NewChain(initialData)
//	tail := c.Emit(newData, index, offset)
//
// An iterator holds a Handle and translates its index through Translate:
//
//	idx = epoch.Translate(idx, &held)
//
// # Thread Safety
//
// Chain mutation (Emit) is not safe for concurrent use — the owning
// container is single-producer with respect to mutation, per the
// container's own contract. Record reference counts use atomic
// operations so that read-only traversal of an already-quiescent chain
// from multiple goroutines (no concurrent Emit in flight) observes
// consistent counts.
//
// # See Also
//
// For the container façade built on top of this package, see the root
// semistable-vector package.
package epoch

import "sync/atomic"

// Record is one entry in an epoch chain: an immutable-after-fuse
// description of a single mutation's effect on the index line.
type Record[T any] struct {
	data   []T
	index  int
	offset int
	next   Handle[T]
	refs   atomic.Int32
}

// Handle is a shared-ownership reference to a Record. The zero Handle is
// the null handle.
type Handle[T any] struct {
	rec *Record[T]
}

// IsNil reports whether h is the null handle.
func (h Handle[T]) IsNil() bool { return h.rec == nil }

// Data returns the element buffer this record describes.
func (h Handle[T]) Data() []T { return h.rec.data }

// Index returns the boundary index of the mutation this record describes.
func (h Handle[T]) Index() int { return h.rec.index }

// Offset returns the signed shift this record's mutation applied to
// indices at or past Index.
func (h Handle[T]) Offset() int { return h.rec.offset }

// Next returns the successor record's handle, or the null handle if h is
// a chain tail.
func (h Handle[T]) Next() Handle[T] {
	if h.rec == nil {
		return Handle[T]{}
	}
	return h.rec.next
}

// RefCount reports the record's current reference count. Exposed for
// diagnostics and tests; production code has no need to read it.
func (h Handle[T]) RefCount() int32 {
	if h.rec == nil {
		return 0
	}
	return h.rec.refs.Load()
}

// Equal reports whether a and b refer to the same record.
func (a Handle[T]) Equal(b Handle[T]) bool { return a.rec == b.rec }

// newRecord allocates a fresh, unowned record (refs == 0). The returned
// handle's single conceptual owner is established by the first Assign
// that stores it into a durable slot.
func newRecord[T any](data []T, index, offset int) Handle[T] {
	return Handle[T]{rec: &Record[T]{data: data, index: index, offset: offset}}
}

// Assign performs the canonical shared-handle slot update: it retains
// newVal (if non-nil) and releases whatever *slot previously held (if
// non-nil), then stores newVal into *slot. Every durable holder of a
// Handle — a Chain's three trailing fields, a Record's next field, an
// iterator's held field — must be mutated only through Assign so that
// reference counts stay accurate for the recycling decision in obtain.
func Assign[T any](slot *Handle[T], newVal Handle[T]) {
	if slot.rec == newVal.rec {
		return
	}
	old := *slot
	*slot = newVal
	if newVal.rec != nil {
		newVal.rec.refs.Add(1)
	}
	if old.rec != nil {
		old.rec.refs.Add(-1)
	}
}

// Release clears *slot, releasing its reference if any. Equivalent to
// Assign(slot, Handle[T]{}).
func Release[T any](slot *Handle[T]) {
	Assign(slot, Handle[T]{})
}

// Retain returns h with its reference count incremented, establishing a
// new durable holder. Every iterator constructor must obtain its held
// handle through Retain (never by copying a Handle value directly) so
// that obtain's recycling decision sees an accurate count.
func Retain[T any](h Handle[T]) Handle[T] {
	var slot Handle[T]
	Assign(&slot, h)
	return slot
}

// clearNext detaches r's next pointer, releasing whatever it referenced.
// Used when a record is about to be recycled: its old next link no
// longer describes anything once the record's data/index/offset are
// about to be overwritten.
func (r *Record[T]) clearNext() {
	Assign(&r.next, Handle[T]{})
}

// Translate implements the canonical index-translation algorithm of the
// iterator update procedure: while held's record has a successor, advance
// held to that successor and, if idx is at or past the successor's
// boundary index, shift idx by the successor's offset. held is mutated in
// place (through Assign, so its reference count stays correct); the
// translated index is returned.
func Translate[T any](idx int, held *Handle[T]) int {
	for !held.rec.next.IsNil() {
		successor := held.rec.next
		if idx >= successor.rec.index {
			idx += successor.rec.offset
		}
		Assign(held, successor)
	}
	return idx
}

// Chain owns the trailing window of a container's epoch chain: the
// current (tail) epoch pe, the previous epoch pe1, and the two-back epoch
// pe2. pe1 and pe2 exist only to enable in-place reuse of epoch-record
// allocations.
type Chain[T any] struct {
	pe  Handle[T]
	pe1 Handle[T]
	pe2 Handle[T]
}

// NewChain creates a chain whose current epoch describes the given
// initial buffer with no prior mutation (index 0, offset 0).
func NewChain[T any](initialData []T) *Chain[T] {
	c := &Chain[T]{}
	Assign(&c.pe, newRecord[T](initialData, 0, 0))
	return c
}

// Current returns the chain's current (tail) epoch handle.
func (c *Chain[T]) Current() Handle[T] { return c.pe }

// Previous returns the chain's pe1 handle (the epoch just before the
// current one), or the null handle if none exists yet.
func (c *Chain[T]) Previous() Handle[T] { return c.pe1 }

// TwoBack returns the chain's pe2 handle, or the null handle if none
// exists yet.
func (c *Chain[T]) TwoBack() Handle[T] { return c.pe2 }

// Emit records one mutation and returns the new current epoch. It
// implements the schema of the container's mutation contract: obtain a
// fresh or recycled record, describe the mutation in it, link it after
// the current tail, and rotate the trailing window forward.
func (c *Chain[T]) Emit(data []T, index, offset int) Handle[T] {
	next := c.obtain()
	next.rec.data = data
	next.rec.index = index
	next.rec.offset = offset

	Assign(&c.pe.rec.next, next)

	Assign(&c.pe2, c.pe1)
	Assign(&c.pe1, c.pe)
	Assign(&c.pe, next)

	return c.pe
}

// obtain implements the epoch-record recycling and fusion policy: reuse
// pe2 if it has no external holder, else reuse pe1, else try to fuse pe1
// into pe2 and reuse the detached record, else allocate fresh.
func (c *Chain[T]) obtain() Handle[T] {
	if !c.pe2.IsNil() && c.pe2.rec.refs.Load() == 1 {
		h := c.pe2
		h.rec.clearNext()
		return h
	}
	if !c.pe1.IsNil() && c.pe1.rec.refs.Load() == 1 {
		h := c.pe1
		Release(&c.pe1)
		h.rec.clearNext()
		return h
	}
	if !c.pe2.IsNil() && !c.pe1.IsNil() &&
		c.pe2.rec.refs.Load() == 2 && c.pe1.rec.refs.Load() == 2 {
		if detached, ok := c.tryFuse(); ok {
			detached.rec.clearNext()
			return detached
		}
	}
	return newRecord[T](nil, 0, 0)
}

// tryFuse attempts to fuse pe1 into pe2 per the fusion predicate. On
// success it returns the now-detached (former pe1) record, reshuffled so
// that the container's pe1 field holds the fused record and pe2 is
// cleared.
func (c *Chain[T]) tryFuse() (Handle[T], bool) {
	first, second := c.pe2.rec, c.pe1.rec
	if !fusionLegal(first, second) {
		return Handle[T]{}, false
	}

	detached := c.pe1
	fused := c.pe2

	Assign(&first.next, second.next)
	first.data = second.data
	first.offset += second.offset

	Assign(&c.pe1, fused)
	Assign(&c.pe2, Handle[T]{})

	return detached, true
}

// fusionLegal implements the fusion predicate of the recycling policy:
// the composed effect of first followed by second must be representable
// as a single epoch with first's index unchanged and summed offsets.
func fusionLegal[T any](first, second *Record[T]) bool {
	if first.offset <= 0 {
		return second.index == first.index
	}
	return first.index <= second.index && second.index <= first.index+first.offset
}

// Swap exchanges the trailing windows of two chains. Used to implement
// the container's member-wise swap.
func (c *Chain[T]) Swap(other *Chain[T]) {
	c.pe, other.pe = other.pe, c.pe
	c.pe1, other.pe1 = other.pe1, c.pe1
	c.pe2, other.pe2 = other.pe2, c.pe2
}

// Len walks the chain from held forward to the tail and reports how many
// links are traversed. Intended for tests and diagnostics (P6/S5), not
// for use on any hot path.
func Len[T any](held Handle[T]) int {
	n := 0
	for r := held.rec; r != nil && !r.next.IsNil(); r = r.next.rec {
		n++
	}
	return n
}
