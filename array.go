package bitinfo

import (
	"fmt"
	"math"
	"unsafe"
)

// Array is a N-dimensional view of fixed-width numeric values.
//
// Arrays do not own their memory, they point into the slice they were made
// from, and views created by Slice or BroadcastTo point into the same memory.
// Strides are expressed in elements; broadcast dimensions have a zero stride.
//
// Array values are immutable and safe to use concurrently.
type Array struct {
	ptr     unsafe.Pointer
	dtype   DType
	shape   []int
	strides []int
}

// MakeArray constructs an array viewing values with the given shape. When no
// shape is given the array has one dimension of length len(values).
//
// The product of the dimensions must equal the number of values, otherwise
// an error wrapping ErrShapeMismatch is returned.
func MakeArray[T Number](values []T, shape ...int) (Array, error) {
	if len(shape) == 0 {
		shape = []int{len(values)}
	}

	size, err := shapeSize(shape)
	if err != nil {
		return Array{}, err
	}
	if size != len(values) {
		return Array{}, fmt.Errorf("cannot view %d values with shape %v: %w", len(values), shape, ErrShapeMismatch)
	}

	a := Array{
		ptr:     unsafe.Pointer(unsafe.SliceData(values)),
		dtype:   dtypeOf[T](),
		shape:   append([]int(nil), shape...),
		strides: rowMajorStrides(shape),
	}
	return a, nil
}

// shapeSize returns the number of elements of an array of the given shape.
// Negative dimensions and products which do not fit in an int are rejected
// with an error wrapping ErrShapeMismatch.
func shapeSize(shape []int) (int, error) {
	for _, n := range shape {
		if n < 0 {
			return 0, fmt.Errorf("negative dimension in shape %v: %w", shape, ErrShapeMismatch)
		}
		if n == 0 {
			return 0, nil
		}
	}
	size := 1
	for _, n := range shape {
		if size > math.MaxInt/n {
			return 0, fmt.Errorf("number of elements of shape %v overflows: %w", shape, ErrShapeMismatch)
		}
		size *= n
	}
	return size, nil
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}

// DType returns the element type of a.
func (a Array) DType() DType { return a.dtype }

// Shape returns a copy of the dimensions of a.
func (a Array) Shape() []int { return append([]int(nil), a.shape...) }

// NDim returns the number of dimensions of a.
func (a Array) NDim() int { return len(a.shape) }

// Len returns the number of elements of a, which is the product of its
// dimensions.
func (a Array) Len() int {
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	return n
}

// Index returns the bits of the i-th element of a in row-major order,
// zero-extended to 64 bits.
func (a Array) Index(i int) uint64 {
	if i < 0 || i >= a.Len() {
		panic("index out of bounds")
	}
	var v [1]uint64
	a.gather(v[:], i)
	return v[0]
}

// Slice returns a view of the elements of a in [i, j) along axis.
//
// The method panics if axis is not a dimension of a or if the indexes are out
// of bounds, like slicing a Go slice.
func (a Array) Slice(axis, i, j int) Array {
	if axis < 0 || axis >= len(a.shape) {
		panic("axis out of bounds")
	}
	if i < 0 || j > a.shape[axis] || i > j {
		panic("slice index out of bounds")
	}

	s := Array{
		ptr:     a.ptr,
		dtype:   a.dtype,
		shape:   a.Shape(),
		strides: append([]int(nil), a.strides...),
	}
	s.shape[axis] = j - i
	if j > i {
		s.ptr = a.offset(i * a.strides[axis])
	}
	return s
}

func (a *Array) offset(elem int) unsafe.Pointer {
	return unsafe.Add(a.ptr, elem*a.dtype.Size)
}

func (a *Array) load(elem int) uint64 {
	p := a.offset(elem)
	switch a.dtype.Size {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	default:
		return *(*uint64)(p)
	}
}

func (a *Array) contiguous() bool {
	stride := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		if a.shape[i] == 1 {
			continue
		}
		if a.strides[i] != stride {
			return false
		}
		stride *= a.shape[i]
	}
	return true
}

// gather loads len(dst) elements of a starting at the logical row-major
// index start, zero-extending them to 64 bits.
func (a *Array) gather(dst []uint64, start int) {
	if len(dst) == 0 {
		return
	}

	if a.contiguous() {
		a.gatherContiguous(dst, start)
		return
	}

	n := len(a.shape)
	index := make([]int, n)
	offset := 0
	for d, rem := n-1, start; d >= 0; d-- {
		index[d] = rem % a.shape[d]
		rem /= a.shape[d]
		offset += index[d] * a.strides[d]
	}

	for i := range dst {
		dst[i] = a.load(offset)

		for d := n - 1; d >= 0; d-- {
			index[d]++
			offset += a.strides[d]
			if index[d] < a.shape[d] {
				break
			}
			offset -= index[d] * a.strides[d]
			index[d] = 0
		}
	}
}

func (a *Array) gatherContiguous(dst []uint64, start int) {
	p := a.offset(start)
	switch a.dtype.Size {
	case 1:
		for i, v := range unsafe.Slice((*uint8)(p), len(dst)) {
			dst[i] = uint64(v)
		}
	case 2:
		for i, v := range unsafe.Slice((*uint16)(p), len(dst)) {
			dst[i] = uint64(v)
		}
	case 4:
		for i, v := range unsafe.Slice((*uint32)(p), len(dst)) {
			dst[i] = uint64(v)
		}
	default:
		copy(dst, unsafe.Slice((*uint64)(p), len(dst)))
	}
}

func (a Array) String() string {
	return fmt.Sprintf("%s%v", a.dtype, a.shape)
}
