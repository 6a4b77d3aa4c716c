// Package bytestreamsplit scatters the bytes of fixed-width unsigned values
// into byte planes.
//
// This transformation does not reduce the size of the data but usually leads
// to a better compression ratio, and it gives access to the bytes of a given
// significance across all values, which is how bit statistics of multi-byte
// values are computed one byte at a time.
//
// Example: three 32 bits values, looking at their raw representation.
//
//	       Element 0      Element 1      Element 2
//	Value  0xAABBCCDD     0x00112233     0xA3B4C5D6
//
// After applying the transformation, planes are ordered by decreasing
// significance:
//
//	Bytes  AA 00 A3 BB 11 B4 CC 22 C5 DD 33 D6
package bytestreamsplit

// Plane appends to dst the byte of each value of src found at the given bit
// shift, that is byte(v >> shift). Shifts greater than the width of the
// values produce zero bytes.
func Plane(dst []byte, src []uint64, shift uint) []byte {
	offset := len(dst)
	dst = grow(dst, len(src))
	out := dst[offset:]

	if shift >= 64 {
		for i := range out {
			out[i] = 0
		}
		return dst
	}

	for i, v := range src {
		out[i] = byte(v >> shift)
	}
	return dst
}

// Encode appends the width planes of src to dst, most significant plane
// first. The width is expressed in bytes.
func Encode(dst []byte, src []uint64, width int) []byte {
	for i := 0; i < width; i++ {
		dst = Plane(dst, src, Shift(width, i))
	}
	return dst
}

// Shift returns the bit shift of the i-th most significant byte of values of
// the given width in bytes.
func Shift(width, i int) uint {
	return uint(width-1-i) * 8
}

func grow(b []byte, n int) []byte {
	if cap(b)-len(b) < n {
		c := make([]byte, len(b), len(b)+n)
		copy(c, b)
		b = c
	}
	return b[:len(b)+n]
}
