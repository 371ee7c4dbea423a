package analysis

import (
	"github.com/montanaflynn/stats"

	"github.com/edujbarrios/real-iop-estimator/domain/sample"
)

// Bounds returns the minimum and maximum readings, each rounded to one
// decimal.
func Bounds(s sample.Sample) (float64, float64) {
	return roundTo(s.Min(), 1), roundTo(s.Max(), 1)
}

// Range returns max - min rounded to one decimal. The same value feeds the
// confidence assessment as the sample's variability.
func Range(s sample.Sample) float64 {
	return roundTo(s.Max()-s.Min(), 1)
}

// StdDev returns the sample standard deviation (n-1 denominator) rounded
// to two decimals. The validator's n>=3 invariant keeps the denominator
// positive.
func StdDev(s sample.Sample) float64 {
	sd, _ := stats.StandardDeviationSample(s.Values())
	return roundTo(sd, 2)
}
