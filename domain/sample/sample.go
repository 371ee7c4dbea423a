package sample

import (
	"sort"

	"github.com/edujbarrios/real-iop-estimator/domain/core"
)

// MinSize is the hard floor below which no robust estimate is defined.
// The trimmed-mean estimator divides by n-2, so three readings is the
// smallest sample with a usable divisor.
const MinSize = 3

// Sample is an immutable, ascending sequence of tonometer readings in mmHg.
// Every order-statistic estimator assumes ascending order, so sorting
// happens exactly once, at construction.
type Sample struct {
	values []float64
}

// New builds a Sample from raw readings. The input slice is copied and
// sorted; the caller keeps ownership of its slice.
func New(values []float64) (Sample, error) {
	if len(values) < MinSize {
		return Sample{}, core.NewInsufficientDataError(len(values), MinSize)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return Sample{values: sorted}, nil
}

// Len returns the number of readings.
func (s Sample) Len() int {
	return len(s.values)
}

// Values returns a copy of the readings in ascending order.
func (s Sample) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Min returns the smallest reading.
func (s Sample) Min() float64 {
	return s.values[0]
}

// Max returns the largest reading.
func (s Sample) Max() float64 {
	return s.values[len(s.values)-1]
}

// Sum returns the total of all readings.
func (s Sample) Sum() float64 {
	var total float64
	for _, v := range s.values {
		total += v
	}
	return total
}
