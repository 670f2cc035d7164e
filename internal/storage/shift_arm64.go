// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build arm64

package storage

import "golang.org/x/sys/cpu"

// unrollFactor mirrors shift_amd64.go's reasoning for arm64: NEON
// (ASIMD) is mandatory on arm64, so the only question is how aggressively
// to unroll.
var unrollFactor = func() int {
	if cpu.ARM64.HasASIMD {
		return 8
	}
	return 2
}()
