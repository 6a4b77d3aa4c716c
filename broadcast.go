package bitinfo

import "fmt"

// BroadcastShapes returns the shape that arrays of the given shapes broadcast
// to.
//
// Shapes are aligned on their trailing dimensions; aligned dimensions must
// be equal or one of them must be 1, and missing leading dimensions count as
// 1. An error wrapping ErrShapeMismatch is returned otherwise.
func BroadcastShapes(shapes ...[]int) ([]int, error) {
	ndim := 0
	for _, s := range shapes {
		ndim = max(ndim, len(s))
	}

	out := make([]int, ndim)
	for i := range out {
		out[i] = 1
	}

	for _, s := range shapes {
		for i, n := range s {
			d := ndim - len(s) + i
			switch {
			case n == out[d]:
			case out[d] == 1:
				out[d] = n
			case n == 1:
			default:
				return nil, fmt.Errorf("shapes %v cannot be broadcast together: %w", shapes, ErrShapeMismatch)
			}
		}
	}
	return out, nil
}

// BroadcastTo returns a view of a with the given shape. The view repeats the
// elements of a along dimensions where a has length 1 and along the leading
// dimensions that a does not have.
func (a Array) BroadcastTo(shape []int) (Array, error) {
	if len(shape) < len(a.shape) {
		return Array{}, fmt.Errorf("cannot broadcast %v to shape %v: %w", a, shape, ErrShapeMismatch)
	}
	if _, err := shapeSize(shape); err != nil {
		return Array{}, fmt.Errorf("cannot broadcast %v: %w", a, err)
	}

	b := Array{
		ptr:     a.ptr,
		dtype:   a.dtype,
		shape:   append([]int(nil), shape...),
		strides: make([]int, len(shape)),
	}

	lead := len(shape) - len(a.shape)
	for i, n := range a.shape {
		d := lead + i
		switch {
		case n == shape[d]:
			b.strides[d] = a.strides[i]
		case n == 1:
			b.strides[d] = 0
		default:
			return Array{}, fmt.Errorf("cannot broadcast %v to shape %v: %w", a, shape, ErrShapeMismatch)
		}
	}
	return b, nil
}

// Broadcast returns views of a and b which have the same shape, following
// the rules of BroadcastShapes.
func Broadcast(a, b Array) (Array, Array, error) {
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return Array{}, Array{}, err
	}
	if a, err = a.BroadcastTo(shape); err != nil {
		return Array{}, Array{}, err
	}
	if b, err = b.BroadcastTo(shape); err != nil {
		return Array{}, Array{}, err
	}
	return a, b, nil
}
