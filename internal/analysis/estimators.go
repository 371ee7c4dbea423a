package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/edujbarrios/real-iop-estimator/domain/sample"
)

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

// SafeIOP is the primary estimate: the mean after dropping one minimum and
// one maximum reading. At n=3 the divisor is 1 and the result is the
// middle reading.
func SafeIOP(s sample.Sample) float64 {
	n := s.Len()
	if n < 3 {
		return MeanIOP(s)
	}
	return roundTo((s.Sum()-s.Min()-s.Max())/float64(n-2), 1)
}

// PossibleIOP is the sample median, the average of the two middle readings
// for even n.
func PossibleIOP(s sample.Sample) float64 {
	median, _ := stats.Median(s.Values())
	return roundTo(median, 1)
}

// ClinicalIOP is the midpoint of the observed pressure range.
func ClinicalIOP(s sample.Sample) float64 {
	return roundTo((s.Min()+s.Max())/2, 1)
}

// MeanIOP is the unweighted arithmetic mean of all readings.
func MeanIOP(s sample.Sample) float64 {
	mean, _ := stats.Mean(s.Values())
	return roundTo(mean, 1)
}

// TrimeanIOP is Tukey's trimean (Q1 + 2*median + Q3) / 4, with quartiles
// taken from the shared interpolated quantile.
func TrimeanIOP(s sample.Sample) float64 {
	values := s.Values()
	q1 := quantile(values, 0.25)
	median := quantile(values, 0.5)
	q3 := quantile(values, 0.75)
	return roundTo((q1+2*median+q3)/4, 1)
}

// IQMIOP is the interquartile mean: the average of the readings in the
// half-open slice [floor(n/4), ceil(3n/4)). If index rounding leaves the
// slice empty, the full-sample mean is used instead.
func IQMIOP(s sample.Sample) float64 {
	values := s.Values()
	n := len(values)

	lower := n / 4
	upper := int(math.Ceil(3 * float64(n) / 4))

	middle := values[lower:upper]
	if len(middle) == 0 {
		return MeanIOP(s)
	}
	mean, _ := stats.Mean(middle)
	return roundTo(mean, 1)
}

// WinsorizedIOP replaces the extreme readings with their nearest
// neighbours and averages all n values. At n=3 both extremes become the
// middle reading and the result is the median.
func WinsorizedIOP(s sample.Sample) float64 {
	values := s.Values()
	n := len(values)
	if n < 3 {
		return MeanIOP(s)
	}
	values[0] = values[1]
	values[n-1] = values[n-2]
	mean, _ := stats.Mean(values)
	return roundTo(mean, 1)
}

// WeightedIOP is the consistency-weighted mean. Each reading carries
// weight 1/(1+|x-median|), so values near the median dominate without the
// extremes being discarded; the denominator keeps every weight positive.
func WeightedIOP(s sample.Sample) float64 {
	values := s.Values()
	median, _ := stats.Median(values)

	weights := make([]float64, len(values))
	for i, value := range values {
		weights[i] = 1 / (1 + math.Abs(value-median))
	}
	return roundTo(stat.Mean(values, weights), 1)
}
