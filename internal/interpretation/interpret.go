package interpretation

import (
	"strings"

	"github.com/edujbarrios/real-iop-estimator/domain/estimate"
	"github.com/edujbarrios/real-iop-estimator/internal/config"
)

// Confidence advisory text per tier.
const (
	noteExcellent = "Excellent measurement consistency - High confidence"
	noteGood      = "Good measurement consistency - Moderate confidence"
	noteFair      = "Fair measurement consistency - Consider additional measurements"
	notePoor      = "High variability detected - Additional measurements recommended"
)

// Classify maps an IOP value onto the clinical band containing it. Bands
// are half-open [low, high) and the table's last band is open-ended, so
// every non-negative pressure lands in exactly one band.
func Classify(iop float64, cfg config.ClinicalConfig) estimate.ClinicalCategory {
	for _, band := range cfg.Bands {
		if iop >= band.Low && iop < band.High {
			return band.Category
		}
	}
	return cfg.Bands[len(cfg.Bands)-1].Category
}

// Assess grades measurement consistency from the observed reading range
// and returns the tier together with its advisory note.
func Assess(readingRange float64, cfg config.ConfidenceConfig) (estimate.Confidence, string) {
	switch {
	case readingRange <= cfg.Excellent:
		return estimate.ConfidenceExcellent, noteExcellent
	case readingRange <= cfg.Good:
		return estimate.ConfidenceGood, noteGood
	case readingRange <= cfg.Fair:
		return estimate.ConfidenceFair, noteFair
	default:
		return estimate.ConfidencePoor, notePoor
	}
}

// StatusOf tags a clinical category for the presentation layer. The tag is
// a pure label mapping with no numeric logic.
func StatusOf(category estimate.ClinicalCategory) estimate.Status {
	label := string(category)
	switch {
	case strings.Contains(label, "Hypotony"):
		return estimate.StatusAlert
	case strings.Contains(label, "Normal"):
		return estimate.StatusNormal
	default:
		return estimate.StatusCaution
	}
}
