package bytestreamsplit_test

import (
	"bytes"
	"testing"

	"github.com/segmentio/bitinfo/encoding/bytestreamsplit"
)

func TestEncode(t *testing.T) {
	src := []uint64{0xAABBCCDD, 0x00112233, 0xA3B4C5D6}
	want := []byte{
		0xAA, 0x00, 0xA3,
		0xBB, 0x11, 0xB4,
		0xCC, 0x22, 0xC5,
		0xDD, 0x33, 0xD6,
	}

	if got := bytestreamsplit.Encode(nil, src, 4); !bytes.Equal(got, want) {
		t.Errorf("want=%X got=%X", want, got)
	}
}

func TestPlane(t *testing.T) {
	tests := []struct {
		scenario string
		src      []uint64
		shift    uint
		want     []byte
	}{
		{
			scenario: "empty",
			src:      nil,
			shift:    0,
			want:     []byte{},
		},

		{
			scenario: "low byte",
			src:      []uint64{0x0102, 0x0304},
			shift:    0,
			want:     []byte{0x02, 0x04},
		},

		{
			scenario: "high byte",
			src:      []uint64{0x0102, 0x0304},
			shift:    8,
			want:     []byte{0x01, 0x03},
		},

		{
			scenario: "beyond width",
			src:      []uint64{0xFF, 0xFE},
			shift:    8,
			want:     []byte{0x00, 0x00},
		},

		{
			scenario: "beyond 64 bits",
			src:      []uint64{^uint64(0)},
			shift:    64,
			want:     []byte{0x00},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			got := bytestreamsplit.Plane([]byte{}, test.src, test.shift)
			if !bytes.Equal(got, test.want) {
				t.Errorf("want=%X got=%X", test.want, got)
			}
		})
	}
}

func TestShift(t *testing.T) {
	for i, want := range []uint{24, 16, 8, 0} {
		if got := bytestreamsplit.Shift(4, i); got != want {
			t.Errorf("Shift(4, %d): want=%d got=%d", i, want, got)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	src := make([]uint64, 4096)
	for i := range src {
		src[i] = uint64(i) * 0x9E3779B97F4A7C15
	}
	dst := make([]byte, 0, 8*len(src))

	for i := 0; i < b.N; i++ {
		dst = bytestreamsplit.Encode(dst[:0], src, 8)
	}
	b.SetBytes(8 * int64(len(src)))
}
