package analysis

import "math"

// quantile returns the p-quantile (0 <= p <= 1) of an ascending slice
// using linear interpolation between order statistics: for rank
// h = p*(n-1), the result is x[floor(h)] + (h-floor(h)) * (x[floor(h)+1] -
// x[floor(h)]). This is the interpolation rule shared by the trimean's
// quartiles and the median, so all order statistics in a report agree on
// one convention.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
