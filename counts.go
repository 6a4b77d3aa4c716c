package bitinfo

import (
	"math"

	"github.com/segmentio/bitinfo/internal/bits"
)

// Counts is a table of joint bit counts. Counts[k][i][j] is the number of
// elements where bit k of the first operand is i and bit k of the second
// operand is j. Bit positions are ordered from the most significant bit of
// the most significant byte.
type Counts [][2][2]int64

func makeCounts(width int) Counts {
	return make(Counts, 8*width)
}

// Bits returns the number of bit positions in c.
func (c Counts) Bits() int { return len(c) }

// Total returns the number of elements tallied at bit position k.
func (c Counts) Total(k int) int64 {
	t := &c[k]
	return t[0][0] + t[0][1] + t[1][0] + t[1][1]
}

// Transpose returns the table of counts with the operands swapped.
func (c Counts) Transpose() Counts {
	t := make(Counts, len(c))
	for k := range c {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				t[k][j][i] = c[k][i][j]
			}
		}
	}
	return t
}

// add merges the byte counts of the i-th most significant byte into c.
func (c Counts) add(i int, b *bits.Counts) {
	for k := range b {
		t := &c[8*i+k]
		t[0][0] += b[k][0]
		t[0][1] += b[k][1]
		t[1][0] += b[k][2]
		t[1][1] += b[k][3]
	}
}

func (c Counts) merge(other Counts) {
	for k := range other {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				c[k][i][j] += other[k][i][j]
			}
		}
	}
}

// MutualInformation returns the mutual information between the bits of the
// two operands at each bit position, in the given logarithm base.
//
// The joint probabilities are the counts divided by the number of elements.
// Cells with a zero probability contribute nothing to the sum. When no
// elements were counted, the information is zero.
func (c Counts) MutualInformation(base float64) []float64 {
	info := make([]float64, len(c))
	logBase := math.Log(base)

	for k := range c {
		size := c.Total(k)
		if size == 0 {
			continue
		}

		var p [2][2]float64
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				p[i][j] = float64(c[k][i][j]) / float64(size)
			}
		}

		pr := [2]float64{p[0][0] + p[0][1], p[1][0] + p[1][1]}
		ps := [2]float64{p[0][0] + p[1][0], p[0][1] + p[1][1]}

		sum := 0.0
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				if p[i][j] == 0 {
					continue
				}
				sum += p[i][j] * math.Log(p[i][j]/(pr[i]*ps[j]))
			}
		}
		info[k] = sum / logBase
	}

	return info
}

// Entropy returns the entropy of the bits of the first operand at each bit
// position, in the given logarithm base.
func (c Counts) Entropy(base float64) []float64 {
	h := make([]float64, len(c))
	for k := range c {
		size := c.Total(k)
		if size == 0 {
			continue
		}
		ones := c[k][1][0] + c[k][1][1]
		h[k] = binaryEntropy(float64(ones)/float64(size), base)
	}
	return h
}

// binaryEntropy is the entropy of a binary variable which is 1 with
// probability p.
func binaryEntropy(p, base float64) float64 {
	h := 0.0
	for _, q := range [2]float64{p, 1 - p} {
		if q > 0 {
			h -= q * math.Log(q)
		}
	}
	return h / math.Log(base)
}
