// Package quick runs property checks over random arrays of unsigned values.
package quick

import (
	"fmt"
	"math/rand"
)

// Unsigned is the set of element types supported by Check.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Sizes is the list of array lengths that Check exercises. It covers the
// small sizes exhaustively and the sizes around the block boundaries of the
// counting kernels.
var Sizes = [...]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
	31, 32, 33,
	63, 64, 65,
	99, 100, 101,
	127, 128, 129,
	255, 256, 257,
	511, 512, 513,
	1000, 1023, 1024, 1025,
	4095, 4096, 4097,
}

// Check is inspired by the standard quick.Check package, but tests arrays of
// larger sizes than the maximum of 50 hardcoded in testing/quick. Each size is
// tested three times with values drawn from a deterministic source.
func Check[T Unsigned](f func([]T) bool) error {
	r := rand.New(rand.NewSource(0))

	for _, n := range Sizes {
		for i := 0; i < 3; i++ {
			in := MakeArray[T](r, n)
			if !f(in) {
				return fmt.Errorf("test #%d: failed on input of size %d: %#v\n", i+1, n, in)
			}
		}
	}
	return nil
}

// MakeArray returns n random values of type T read from r.
func MakeArray[T Unsigned](r *rand.Rand, n int) []T {
	v := make([]T, n)
	for i := range v {
		v[i] = T(r.Uint64())
	}
	return v
}
