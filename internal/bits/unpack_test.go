package bits

import (
	"bytes"
	"testing"
)

const bufferSize = 4096

func TestUnpackBits(t *testing.T) {
	tests := []struct {
		scenario string
		dst      []byte
		src      []byte
		want     []byte
	}{
		{
			scenario: "empty",
			want:     nil,
		},

		{
			scenario: "msb first",
			src:      []byte{0b10000000, 0b00000001},
			want: []byte{
				1, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 1,
			},
		},

		{
			scenario: "append",
			dst:      []byte{9},
			src:      []byte{0b10100101},
			want:     []byte{9, 1, 0, 1, 0, 0, 1, 0, 1},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			got := UnpackBits(test.dst, test.src)
			if !bytes.Equal(got, test.want) {
				t.Errorf("want=%v got=%v", test.want, got)
			}
		})
	}
}

func TestPair(t *testing.T) {
	for i, p := range [][2]byte{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		if got := Pair(p[0], p[1]); got != i {
			t.Errorf("Pair(%d,%d): want=%d got=%d", p[0], p[1], i, got)
		}
	}
}
