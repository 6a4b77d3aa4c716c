//go:build !purego

package bits

import "golang.org/x/sys/cpu"

// Without the POPCNT instruction, math/bits falls back to a software
// population count which is slower than unpacking the bits.
var hasPOPCNT = cpu.X86.HasPOPCNT

func countPairs(counts *Counts, a, b []byte) {
	if hasPOPCNT {
		countPairsPopcnt(counts, a, b)
	} else {
		countPairsUnpack(counts, a, b)
	}
}
