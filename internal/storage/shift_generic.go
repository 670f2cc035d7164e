// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build !amd64 && !arm64

package storage

// unrollFactor is conservative on architectures without a detected wide
// vector unit.
var unrollFactor = 1
