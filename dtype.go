package bitinfo

import (
	"fmt"
	"unsafe"
)

// Kind is the family of an element type.
type Kind int8

const (
	Invalid Kind = iota
	Uint
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case Uint:
		return "uint"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "invalid"
	}
}

// DType describes the element type of an Array: its kind and its size in
// bytes.
type DType struct {
	Kind Kind
	Size int
}

var (
	Uint8   = DType{Kind: Uint, Size: 1}
	Uint16  = DType{Kind: Uint, Size: 2}
	Uint32  = DType{Kind: Uint, Size: 4}
	Uint64  = DType{Kind: Uint, Size: 8}
	Int8    = DType{Kind: Int, Size: 1}
	Int16   = DType{Kind: Int, Size: 2}
	Int32   = DType{Kind: Int, Size: 4}
	Int64   = DType{Kind: Int, Size: 8}
	Float32 = DType{Kind: Float, Size: 4}
	Float64 = DType{Kind: Float, Size: 8}
)

func (t DType) String() string {
	if t.Kind == Invalid {
		return "invalid"
	}
	return fmt.Sprintf("%s%d", t.Kind, 8*t.Size)
}

// Bits returns the number of bits of the element representation.
func (t DType) Bits() int { return 8 * t.Size }

// Number is the set of Go types that arrays can be made of.
type Number interface {
	uint8 | uint16 | uint32 | uint64 | uint |
		int8 | int16 | int32 | int64 | int |
		float32 | float64
}

func dtypeOf[T Number]() DType {
	var zero T
	size := int(unsafe.Sizeof(zero))
	switch any(zero).(type) {
	case uint8, uint16, uint32, uint64, uint:
		return DType{Kind: Uint, Size: size}
	case int8, int16, int32, int64, int:
		return DType{Kind: Int, Size: size}
	default:
		return DType{Kind: Float, Size: size}
	}
}
