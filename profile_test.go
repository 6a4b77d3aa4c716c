package bitinfo_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/bitinfo"
	"github.com/segmentio/bitinfo/compress"
	"github.com/segmentio/bitinfo/compress/brotli"
	"github.com/segmentio/bitinfo/compress/gzip"
	"github.com/segmentio/bitinfo/compress/lz4"
	"github.com/segmentio/bitinfo/compress/snappy"
	"github.com/segmentio/bitinfo/compress/uncompressed"
	"github.com/segmentio/bitinfo/compress/zstd"
)

// noisyLowByte returns values with a constant high byte and a random low
// byte.
func noisyLowByte(n int) []uint16 {
	prng := rand.New(rand.NewSource(0))
	values := make([]uint16, n)
	for i := range values {
		values[i] = 0x4200 | uint16(prng.Intn(256))
	}
	return values
}

func TestProfileUncompressed(t *testing.T) {
	a := makeArray(t, noisyLowByte(1000), 10, 100)

	profile, err := bitinfo.Profile(a, new(uncompressed.Codec))
	require.NoError(t, err)

	assert.Equal(t, &bitinfo.PlaneProfile{
		Codec:  "UNCOMPRESSED",
		Size:   2000,
		Planes: []int{1000, 1000},
		Native: 2000,
		Split:  2000,
	}, profile)
	assert.Equal(t, 1.0, profile.Ratio())
}

func TestProfileCodecs(t *testing.T) {
	a := makeArray(t, noisyLowByte(10000))

	for _, codec := range []compress.Codec{
		new(brotli.Codec),
		new(gzip.Codec),
		new(lz4.Codec),
		new(snappy.Codec),
		new(zstd.Codec),
	} {
		t.Run(codec.String(), func(t *testing.T) {
			profile, err := bitinfo.Profile(a, codec)
			require.NoError(t, err)
			require.Len(t, profile.Planes, 2)

			assert.Equal(t, 20000, profile.Size)
			assert.Less(t, profile.Planes[0], profile.Planes[1]/10)
			assert.Greater(t, profile.Ratio(), 1.5)
		})
	}
}

func TestProfileBroadcastView(t *testing.T) {
	a := makeArray(t, []uint32{1, 2, 3}, 3, 1)
	b, err := a.BroadcastTo([]int{3, 4})
	require.NoError(t, err)

	profile, err := bitinfo.Profile(b, new(uncompressed.Codec))
	require.NoError(t, err)
	assert.Equal(t, 48, profile.Size)
	assert.Equal(t, []int{12, 12, 12, 12}, profile.Planes)
}

func TestProfileTypeMismatch(t *testing.T) {
	a := makeArray(t, []float64{1, 2, 3})
	_, err := bitinfo.Profile(a, new(uncompressed.Codec))
	assert.True(t, errors.Is(err, bitinfo.ErrTypeMismatch), "%v", err)
}
