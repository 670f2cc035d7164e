// Licensed under the MIT License. See LICENSE file in the project root for details.

package semistable

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel wrapped by At's bounds error.
var ErrOutOfRange = errors.New("semistable: index out of range")

// outOfRange builds the wrapped bounds error At reports.
func outOfRange(i, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, size)
}
