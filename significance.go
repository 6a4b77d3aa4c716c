package bitinfo

import "math"

// FreeEntropy returns the information, in the given logarithm base, that a
// bit position can show on n samples by chance alone at the given confidence
// level.
//
// With n samples of two independent bits, the probability of the most
// frequent joint outcome stays below p = 1/2 + z/(2*sqrt(n)) at the
// confidence level c, where z is the two-sided quantile of the normal
// distribution. The free entropy is the information of a bit taking 1 with
// probability p: log(2) - H(p, 1-p).
func FreeEntropy(n int64, confidence, base float64) float64 {
	if n <= 0 {
		return math.Log(2) / math.Log(base)
	}
	z := math.Sqrt2 * math.Erfinv(confidence)
	p := math.Min(1, 0.5+z/(2*math.Sqrt(float64(n))))
	return math.Log(2)/math.Log(base) - binaryEntropy(p, base)
}

func zeroInsignificant(info []float64, threshold float64) {
	for i, v := range info {
		if v <= threshold {
			info[i] = 0
		}
	}
}
