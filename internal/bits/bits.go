// Package bits implements the bit-level kernels used to tally joint bit
// values of byte arrays.
package bits

// Pair indexes the four joint values that two bits can take, in the order
// (0,0), (0,1), (1,0), (1,1).
func Pair(a, b byte) int {
	return int(a<<1 | b)
}
