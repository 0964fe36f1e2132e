package runtime

import (
	_ "unsafe" // for go:linkname
)

// Procyield spins for the given number of cycles without yielding to the
// scheduler. On x86 it uses the CPU PAUSE instruction, which lowers power
// consumption during short waits (typically 4-30 cycles).
//
//go:linkname Procyield runtime.procyield
func Procyield(cycles uint32)
