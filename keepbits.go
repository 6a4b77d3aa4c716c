package bitinfo

import "fmt"

// KeepBits returns the number of leading bits, from the most significant,
// which hold at least the fraction level of the total information in info.
//
// info is typically the result of BitInformation; bits past the returned
// count can be discarded while preserving the requested fraction of the
// information. Negative values, which can only come from rounding errors,
// count as zero. When info holds no information, no bits need to be kept.
//
// level must be in (0, 1].
func KeepBits(info []float64, level float64) (int, error) {
	if !(level > 0 && level <= 1) {
		return 0, fmt.Errorf("information level must be in (0, 1]: %v", level)
	}

	total := 0.0
	for _, v := range info {
		total += max(v, 0)
	}
	if total == 0 {
		return 0, nil
	}

	// Tolerate the rounding errors of the cumulative sum when the whole
	// information is requested.
	const epsilon = 1e-12
	threshold := level*total - epsilon*total

	sum := 0.0
	for i, v := range info {
		sum += max(v, 0)
		if sum >= threshold {
			return i + 1, nil
		}
	}
	return len(info), nil
}
