package app

import (
	"github.com/edujbarrios/real-iop-estimator/domain/estimate"
	"github.com/edujbarrios/real-iop-estimator/domain/sample"
	"github.com/edujbarrios/real-iop-estimator/internal/analysis"
	"github.com/edujbarrios/real-iop-estimator/internal/config"
	"github.com/edujbarrios/real-iop-estimator/internal/interpretation"
	"github.com/edujbarrios/real-iop-estimator/internal/validation"
)

// EstimationService orchestrates validation, estimation and clinical
// interpretation. It is stateless apart from its configuration, so one
// instance serves any number of independent calls.
type EstimationService struct {
	cfg *config.Config
}

// NewEstimationService creates an estimation service
func NewEstimationService(cfg *config.Config) *EstimationService {
	return &EstimationService{cfg: cfg}
}

// EvaluateText runs the full pipeline on one line of comma-separated
// readings. Validation either fully succeeds or the computation never
// runs; no partial report is ever returned.
func (s *EstimationService) EvaluateText(raw string) (estimate.Report, error) {
	smp, err := validation.Parse(raw, s.cfg.Measurement)
	if err != nil {
		return estimate.Report{}, err
	}
	return s.Compute(smp), nil
}

// Compute derives the full report from an already validated sample: all
// eight estimators, the dispersion statistics, and the clinical and
// confidence advisories. The clinical category is taken from the primary
// (safe) estimate.
func (s *EstimationService) Compute(smp sample.Sample) estimate.Report {
	safe := analysis.SafeIOP(smp)
	minIOP, maxIOP := analysis.Bounds(smp)
	readingRange := analysis.Range(smp)

	category := interpretation.Classify(safe, s.cfg.Clinical)
	confidence, note := interpretation.Assess(readingRange, s.cfg.Confidence)

	return estimate.Report{
		SafeIOP:       safe,
		PossibleIOP:   analysis.PossibleIOP(smp),
		ClinicalIOP:   analysis.ClinicalIOP(smp),
		MeanIOP:       analysis.MeanIOP(smp),
		TrimeanIOP:    analysis.TrimeanIOP(smp),
		IQMIOP:        analysis.IQMIOP(smp),
		WinsorizedIOP: analysis.WinsorizedIOP(smp),
		WeightedIOP:   analysis.WeightedIOP(smp),

		MinIOP:        minIOP,
		MaxIOP:        maxIOP,
		Variability:   readingRange,
		StdDev:        analysis.StdDev(smp),
		NMeasurements: smp.Len(),

		Interpretation: category,
		Status:         interpretation.StatusOf(category),
		Confidence:     confidence,
		ConfidenceNote: note,
	}
}
