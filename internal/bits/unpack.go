package bits

// UnpackBits appends the bits of each byte of src to dst, one bit per byte,
// most significant bit first. The returned slice holds 8*len(src) more
// bytes than dst, each either 0 or 1.
func UnpackBits(dst, src []byte) []byte {
	offset := len(dst)
	dst = grow(dst, 8*len(src))
	out := dst[offset:]

	for i, b := range src {
		x := out[8*i : 8*i+8]
		x[0] = (b >> 7) & 1
		x[1] = (b >> 6) & 1
		x[2] = (b >> 5) & 1
		x[3] = (b >> 4) & 1
		x[4] = (b >> 3) & 1
		x[5] = (b >> 2) & 1
		x[6] = (b >> 1) & 1
		x[7] = b & 1
	}

	return dst
}

func grow(b []byte, n int) []byte {
	if cap(b)-len(b) < n {
		c := make([]byte, len(b), len(b)+n)
		copy(c, b)
		b = c
	}
	return b[:len(b)+n]
}
