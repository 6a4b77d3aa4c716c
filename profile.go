package bitinfo

import (
	"encoding/binary"
	"fmt"

	"github.com/segmentio/bitinfo/compress"
	"github.com/segmentio/bitinfo/encoding/bytestreamsplit"
	"github.com/segmentio/bitinfo/internal/debug"
)

// PlaneProfile describes how well the bytes of an array compress with a
// codec.
type PlaneProfile struct {
	// Name of the codec.
	Codec string
	// Size of the uncompressed data in bytes.
	Size int
	// Compressed size of each byte plane, most significant first.
	Planes []int
	// Compressed size of the values laid out in little-endian order.
	Native int
	// Compressed size of the concatenated byte planes.
	Split int
}

// Ratio returns the compression ratio of the byte stream split layout.
func (p *PlaneProfile) Ratio() float64 {
	if p.Split == 0 {
		return 1
	}
	return float64(p.Size) / float64(p.Split)
}

// Profile compresses the byte planes of a with codec and reports their
// sizes. Planes holding the low bits of noisy data compress poorly, which
// complements the information per bit in deciding which bits to discard.
//
// The array must have an unsigned integer element type, otherwise an error
// wrapping ErrTypeMismatch is returned.
func Profile(a Array, codec compress.Codec) (*PlaneProfile, error) {
	if err := checkUnsigned(a, a); err != nil {
		return nil, err
	}

	width := a.dtype.Size
	values := make([]uint64, a.Len())
	a.gather(values, 0)

	profile := &PlaneProfile{
		Codec:  codec.String(),
		Size:   width * len(values),
		Planes: make([]int, width),
	}

	var plane, buffer []byte
	var err error

	for i := range profile.Planes {
		plane = bytestreamsplit.Plane(plane[:0], values, bytestreamsplit.Shift(width, i))
		if buffer, err = codec.Encode(buffer[:0], plane); err != nil {
			return nil, fmt.Errorf("compressing byte plane %d with %s: %w", i, codec, err)
		}
		profile.Planes[i] = len(buffer)
	}

	split := bytestreamsplit.Encode(make([]byte, 0, profile.Size), values, width)
	if buffer, err = codec.Encode(buffer[:0], split); err != nil {
		return nil, fmt.Errorf("compressing byte stream split values with %s: %w", codec, err)
	}
	profile.Split = len(buffer)

	native := littleEndian(split[:0], values, width)
	if buffer, err = codec.Encode(buffer[:0], native); err != nil {
		return nil, fmt.Errorf("compressing values with %s: %w", codec, err)
	}
	profile.Native = len(buffer)

	debug.Format("profile of %s with %s: planes=%v split=%d native=%d", a, profile.Codec, profile.Planes, profile.Split, profile.Native)
	return profile, nil
}

func littleEndian(dst []byte, values []uint64, width int) []byte {
	var b [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(b[:], v)
		dst = append(dst, b[:width]...)
	}
	return dst
}
