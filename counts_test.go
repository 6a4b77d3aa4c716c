package bitinfo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/segmentio/bitinfo"
)

func TestCountsMutualInformation(t *testing.T) {
	tests := []struct {
		scenario string
		counts   bitinfo.Counts
		want     []float64
	}{
		{
			scenario: "empty",
			counts:   bitinfo.Counts{{}},
			want:     []float64{0},
		},
		{
			scenario: "identical",
			counts:   bitinfo.Counts{{{5, 0}, {0, 5}}},
			want:     []float64{1},
		},
		{
			scenario: "inverted",
			counts:   bitinfo.Counts{{{0, 3}, {3, 0}}},
			want:     []float64{1},
		},
		{
			scenario: "independent",
			counts:   bitinfo.Counts{{{1, 1}, {1, 1}}},
			want:     []float64{0},
		},
		{
			scenario: "constant",
			counts:   bitinfo.Counts{{{0, 0}, {0, 7}}},
			want:     []float64{0},
		},
		{
			// p = [[1/2, 1/4], [0, 1/4]]
			scenario: "partial",
			counts:   bitinfo.Counts{{{2, 1}, {0, 1}}},
			want: []float64{
				0.5*math.Log2(0.5/(0.75*0.5)) +
					0.25*math.Log2(0.25/(0.75*0.5)) +
					0.25*math.Log2(0.25/(0.25*0.5)),
			},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			info := test.counts.MutualInformation(2)
			assert.InDeltaSlice(t, test.want, info, 1e-12)
		})
	}
}

func TestCountsEntropy(t *testing.T) {
	counts := bitinfo.Counts{
		{{4, 0}, {0, 4}},
		{{8, 0}, {0, 0}},
		{{1, 2}, {1, 0}},
		{},
	}

	h := counts.Entropy(2)
	assert.InDeltaSlice(t, []float64{1, 0, -0.25*math.Log2(0.25) - 0.75*math.Log2(0.75), 0}, h, 1e-12)

	nats := counts.Entropy(math.E)
	assert.InDelta(t, math.Ln2, nats[0], 1e-12)
}

func TestCountsTotal(t *testing.T) {
	counts := bitinfo.Counts{{{1, 2}, {3, 4}}, {}}
	assert.Equal(t, 2, counts.Bits())
	assert.Equal(t, int64(10), counts.Total(0))
	assert.Equal(t, int64(0), counts.Total(1))
}

func TestCountsTranspose(t *testing.T) {
	counts := bitinfo.Counts{{{1, 2}, {3, 4}}}
	assert.Equal(t, bitinfo.Counts{{{1, 3}, {2, 4}}}, counts.Transpose())
	assert.Equal(t, counts, counts.Transpose().Transpose())
}
