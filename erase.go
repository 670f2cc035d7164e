// Licensed under the MIT License. See LICENSE file in the project root for details.

package semistable

// EraseValue removes every element equal to val from v, preserving the
// relative order of the remaining elements, and returns the number of
// elements removed.
func EraseValue[T comparable](v *Vector[T], val T) int {
	return EraseIf(v, func(x T) bool { return x == val })
}

// EraseIf removes every element for which pred reports true, preserving
// the relative order of the remaining elements, and returns the number
// of elements removed.
//
// Each removal is performed as its own single-element Erase so that the
// epoch chain records the same sequence of boundary shifts a caller
// doing the equivalent removals by hand would produce; iterators to
// elements that survive the sweep remain valid throughout.
func EraseIf[T any](v *Vector[T], pred func(T) bool) int {
	removed := 0
	it := v.Begin()
	end := v.End()
	for it.Sub(end) < 0 {
		if pred(*it.Deref()) {
			it = v.Erase(it)
			end = v.End()
			removed++
			continue
		}
		it = it.Next()
	}
	return removed
}
