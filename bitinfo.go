/*
Package bitinfo measures how much information each bit of fixed-width
unsigned integers carries.

For each bit position of the element representation, the package counts how
often the bit takes each joint value between two arrays, and derives the
mutual information between the bits of the two arrays from those counts.
Applied to adjacent elements of a single array, the mutual information tells
which bits are predictable from their neighbors and which ones are noise,
which is how the number of bits worth keeping before lossy compression is
decided (see KeepBits).

# Arrays

Arrays are N-dimensional views over Go slices, made with MakeArray. Operands
of different shapes are broadcast together following the NumPy rules.
Floating point data must be reinterpreted as unsigned integers of the same
width before being passed to this package, for example:

	values := make([]uint32, len(temperatures))
	for i, t := range temperatures {
		values[i] = math.Float32bits(t)
	}
	a, err := bitinfo.MakeArray(values, 180, 360)

# Bit positions

Results have 8 entries per byte of the element type. Index 0 is the most
significant bit of the most significant byte.
*/
package bitinfo

import "fmt"

// BitPairCount8 counts the joint bit values of two arrays of bytes.
//
// The returned table has 8 bit positions: Counts[k][i][j] is the number of
// elements where bit k of a (k=0 being the most significant bit) is i and
// the same bit of b is j.
//
// Both arrays must have the Uint8 element type, otherwise an error wrapping
// ErrTypeMismatch is returned. Arrays of different shapes are broadcast
// together.
func BitPairCount8(a, b Array, options ...Option) (Counts, error) {
	if a.dtype != Uint8 || b.dtype != Uint8 {
		return nil, fmt.Errorf("counting bit pairs of bytes requires uint8 arrays, got %s and %s: %w", a.dtype, b.dtype, ErrTypeMismatch)
	}
	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}
	a, b, err = Broadcast(a, b)
	if err != nil {
		return nil, err
	}
	return countBitPairs(a, b, 1, config), nil
}

// BitPairCount counts the joint bit values of two arrays of unsigned
// integers.
//
// The returned table has 8 bit positions per byte of the widest element
// type of a and b, ordered from the most significant bit of the most
// significant byte. The bytes of the narrower operand beyond its own width
// are counted as zeros; callers should usually pass operands of the same
// element type.
//
// Both arrays must have unsigned integer element types, otherwise an error
// wrapping ErrTypeMismatch is returned. The arrays are broadcast together
// before the bytes of their elements are counted.
func BitPairCount(a, b Array, options ...Option) (Counts, error) {
	if err := checkUnsigned(a, b); err != nil {
		return nil, err
	}
	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}
	return bitPairCount(a, b, config)
}

func bitPairCount(a, b Array, config *Config) (Counts, error) {
	width := max(a.dtype.Size, b.dtype.Size)
	a, b, err := Broadcast(a, b)
	if err != nil {
		return nil, err
	}
	return countBitPairs(a, b, width, config), nil
}

// MutualInformation returns the mutual information between the bits of a and
// b at each bit position, measured in the logarithm base configured with the
// Base option (bits by default).
//
// The arrays must have unsigned integer element types and broadcastable
// shapes, as required by BitPairCount. The result has 8 entries per byte of
// the widest element type. Empty arrays carry no information, their result
// is all zeros.
//
// When the Confidence option is set, values which are not significant at
// that confidence level are set to zero (see FreeEntropy).
func MutualInformation(a, b Array, options ...Option) ([]float64, error) {
	if err := checkUnsigned(a, b); err != nil {
		return nil, err
	}
	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}
	return mutualInformation(a, b, config)
}

func mutualInformation(a, b Array, config *Config) ([]float64, error) {
	counts, err := bitPairCount(a, b, config)
	if err != nil {
		return nil, err
	}

	info := counts.MutualInformation(config.Base)

	if config.Confidence != 0 && len(counts) != 0 {
		if n := counts.Total(0); n > 0 {
			zeroInsignificant(info, FreeEntropy(n, config.Confidence, config.Base))
		}
	}

	return info, nil
}

// BitInformation returns the mutual information between the bits of each
// element of a and the bits of the element that follows along axis. Negative
// axes count from the last dimension.
//
// The information is measured in bits unless the Base option says
// otherwise. An error wrapping ErrInvalidAxis is returned if axis is not a
// dimension of a, and one wrapping ErrAxisTooShort if a has less than two
// elements along axis.
func BitInformation(a Array, axis int, options ...Option) ([]float64, error) {
	if err := checkUnsigned(a, a); err != nil {
		return nil, err
	}

	ndim := a.NDim()
	if axis < -ndim || axis >= ndim {
		return nil, fmt.Errorf("axis %d of %d-dimensional array: %w", axis, ndim, ErrInvalidAxis)
	}
	if axis < 0 {
		axis += ndim
	}

	n := a.shape[axis]
	if n < 2 {
		return nil, fmt.Errorf("computing bit information along axis %d of length %d: %w", axis, n, ErrAxisTooShort)
	}

	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}

	return mutualInformation(a.Slice(axis, 0, n-1), a.Slice(axis, 1, n), config)
}

func checkUnsigned(a, b Array) error {
	if a.dtype.Kind != Uint || b.dtype.Kind != Uint {
		return fmt.Errorf("bit information requires unsigned integer arrays, got %s and %s: %w", a.dtype, b.dtype, ErrTypeMismatch)
	}
	return nil
}
