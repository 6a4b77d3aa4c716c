//go:build purego || !amd64

package bits

func countPairs(counts *Counts, a, b []byte) {
	countPairsUnpack(counts, a, b)
}
