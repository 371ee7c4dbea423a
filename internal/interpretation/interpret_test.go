package interpretation

import (
	"testing"

	"github.com/edujbarrios/real-iop-estimator/domain/estimate"
	"github.com/edujbarrios/real-iop-estimator/internal/config"
)

// TestClassify_BandSeams verifies the half-open [lo, hi) boundary
// semantics at every seam of the clinical table.
func TestClassify_BandSeams(t *testing.T) {
	cfg := config.Default().Clinical

	cases := []struct {
		iop  float64
		want estimate.ClinicalCategory
	}{
		{0, estimate.CategorySevereHypotony},
		{5.9, estimate.CategorySevereHypotony},
		{6.0, estimate.CategoryModerateHypotony},
		{7.9, estimate.CategoryModerateHypotony},
		{8.0, estimate.CategoryMildHypotony},
		{9.9, estimate.CategoryMildHypotony},
		{10.0, estimate.CategoryNormal},
		{20.999, estimate.CategoryNormal},
		{21.0, estimate.CategoryBorderlineElevated},
		{23.9, estimate.CategoryBorderlineElevated},
		{24.0, estimate.CategoryElevated},
		{29.9, estimate.CategoryElevated},
		{30.0, estimate.CategorySeverelyElevated},
		{100, estimate.CategorySeverelyElevated},
		{250, estimate.CategorySeverelyElevated}, // table is open-ended at the top
	}
	for _, tc := range cases {
		if got := Classify(tc.iop, cfg); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.iop, got, tc.want)
		}
	}
}

// TestAssess_TierBoundaries verifies the thresholds are inclusive: a range
// of exactly 2, 4 or 6 mmHg still earns the better tier.
func TestAssess_TierBoundaries(t *testing.T) {
	cfg := config.Default().Confidence

	cases := []struct {
		rng  float64
		want estimate.Confidence
	}{
		{0, estimate.ConfidenceExcellent},
		{2.0, estimate.ConfidenceExcellent},
		{2.1, estimate.ConfidenceGood},
		{3.0, estimate.ConfidenceGood},
		{4.0, estimate.ConfidenceGood},
		{4.1, estimate.ConfidenceFair},
		{6.0, estimate.ConfidenceFair},
		{6.1, estimate.ConfidencePoor},
		{25, estimate.ConfidencePoor},
	}
	for _, tc := range cases {
		got, note := Assess(tc.rng, cfg)
		if got != tc.want {
			t.Errorf("Assess(%v) = %q, want %q", tc.rng, got, tc.want)
		}
		if note == "" {
			t.Errorf("Assess(%v) returned an empty advisory", tc.rng)
		}
	}
}

// The poor tier must carry the advisory to collect more measurements.
func TestAssess_PoorAdvisory(t *testing.T) {
	_, note := Assess(9, config.Default().Confidence)
	if note != "High variability detected - Additional measurements recommended" {
		t.Errorf("unexpected poor-tier advisory: %q", note)
	}
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		category estimate.ClinicalCategory
		want     estimate.Status
	}{
		{estimate.CategorySevereHypotony, estimate.StatusAlert},
		{estimate.CategoryModerateHypotony, estimate.StatusAlert},
		{estimate.CategoryMildHypotony, estimate.StatusAlert},
		{estimate.CategoryNormal, estimate.StatusNormal},
		{estimate.CategoryBorderlineElevated, estimate.StatusCaution},
		{estimate.CategoryElevated, estimate.StatusCaution},
		{estimate.CategorySeverelyElevated, estimate.StatusCaution},
	}
	for _, tc := range cases {
		if got := StatusOf(tc.category); got != tc.want {
			t.Errorf("StatusOf(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}
