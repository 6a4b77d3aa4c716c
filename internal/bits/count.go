package bits

import (
	"encoding/binary"
	"math/bits"
)

// Counts holds, for each bit position of a byte (index 0 is the most
// significant bit), the number of occurrences of each joint value indexed
// by Pair.
type Counts = [8][4]int64

// CountPairs tallies the joint bit values of the byte pairs (a[i], b[i])
// and adds them to counts.
//
// The function panics if a and b do not have the same length.
func CountPairs(counts *Counts, a, b []byte) {
	if len(a) != len(b) {
		panic("bits.CountPairs: input lengths mismatch")
	}
	countPairs(counts, a, b)
}

// The unpack block size bounds the scratch space used by the reference
// kernel, it holds 8 bits per byte of each input.
const unpackBlock = 512

func countPairsUnpack(counts *Counts, a, b []byte) {
	var bufA, bufB [8 * unpackBlock]byte

	for len(a) > 0 {
		n := unpackBlock
		if n > len(a) {
			n = len(a)
		}

		ua := UnpackBits(bufA[:0], a[:n])
		ub := UnpackBits(bufB[:0], b[:n])

		for i := range ua {
			counts[i%8][Pair(ua[i], ub[i])]++
		}

		a, b = a[n:], b[n:]
	}
}

// lsb has the least significant bit of every byte of a 64 bits word set.
const lsb = 0x0101010101010101

// countPairsPopcnt is a positional population count: it loads 8 bytes at a
// time in a 64 bits word and counts the set bits of each position with a
// single popcount per position. Only the ones of a, b and a&b are tallied,
// the other joint values are derived from them.
func countPairsPopcnt(counts *Counts, a, b []byte) {
	var onesA, onesB, onesAB [8]int64
	i := 0

	for ; i+8 <= len(a); i += 8 {
		wa := binary.LittleEndian.Uint64(a[i:])
		wb := binary.LittleEndian.Uint64(b[i:])
		wab := wa & wb

		for j := 0; j < 8; j++ {
			k := 7 - j
			onesA[k] += int64(bits.OnesCount64((wa >> j) & lsb))
			onesB[k] += int64(bits.OnesCount64((wb >> j) & lsb))
			onesAB[k] += int64(bits.OnesCount64((wab >> j) & lsb))
		}
	}

	for ; i < len(a); i++ {
		x, y := a[i], b[i]
		for j := 0; j < 8; j++ {
			k := 7 - j
			onesA[k] += int64((x >> j) & 1)
			onesB[k] += int64((y >> j) & 1)
			onesAB[k] += int64(((x & y) >> j) & 1)
		}
	}

	n := int64(len(a))
	for k := range counts {
		c := &counts[k]
		c[3] += onesAB[k]
		c[2] += onesA[k] - onesAB[k]
		c[1] += onesB[k] - onesAB[k]
		c[0] += n - onesA[k] - onesB[k] + onesAB[k]
	}
}
