// Licensed under the MIT License. See LICENSE file in the project root for details.

package semistable

import "github.com/joaquintides/semistable-vector/internal/epoch"

// Swap exchanges the contents of v and other in constant time, including
// their epoch chains. Iterators obtained from v before the swap now refer
// to other's former contents, and vice versa — they stay logically
// attached to their element through whichever Vector now holds it.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.storage.SwapWith(&other.storage)
	v.chain.Swap(other.chain)
	v.checked, other.checked = other.checked, v.checked
}

// Equal reports whether v and other hold the same number of elements and
// eq reports every corresponding pair equal.
func (v *Vector[T]) Equal(other *Vector[T], eq func(a, b T) bool) bool {
	if v.storage.Len() != other.storage.Len() {
		return false
	}
	a, b := v.storage.Data(), other.storage.Data()
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// MoveFrom replaces v's contents with other's, leaving other empty and
// ready to reuse. It is the move-assignment counterpart to Swap: use it
// when other's prior contents need not survive the operation.
//
// v's own epoch chain records this as a single assign-shaped epoch —
// index oldLen, offset newLen-oldLen — exactly as Assign does, so an
// iterator held on v from before the call translates forward onto
// other's adopted data instead of being stranded on a chain v no longer
// mutates. Iterators obtained from other before the move are not
// carried over: other keeps its identity and starts a fresh chain, so
// they become invalid, matching a moved-from source's iterators
// becoming invalid.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	v.checkPre()
	oldLen := v.storage.Len()
	otherLen := other.storage.Len()
	v.storage.Adopt(other.storage.Take())
	v.emit(oldLen, otherLen-oldLen)
	v.checked = other.checked
	v.checkPost()

	*other = Vector[T]{}
	other.chain = epoch.NewChain[T](other.storage.Data())
}
