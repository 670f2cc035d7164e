// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build amd64

package storage

import "golang.org/x/sys/cpu"

// unrollFactor sizes the scalar copy loop in shiftRight/shiftLeft to the
// widest SIMD register the CPU advertises, so the compiler has more
// independent assignments per iteration to schedule and autovectorize.
// Values are plain T assignments throughout; this only changes how many
// of them are grouped per loop iteration, never how they're performed,
// so it stays correct for any T including types holding pointers.
var unrollFactor = func() int {
	switch {
	case cpu.X86.HasAVX2:
		return 8
	case cpu.X86.HasSSE42:
		return 4
	default:
		return 2
	}
}()
