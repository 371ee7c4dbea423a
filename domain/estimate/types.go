package estimate

// Estimator identifies one of the eight point-estimate methods. The values
// double as the stable field names of the Report record.
type Estimator string

const (
	EstimatorSafe       Estimator = "safe_iop"
	EstimatorPossible   Estimator = "possible_iop"
	EstimatorClinical   Estimator = "clinical_iop"
	EstimatorMean       Estimator = "mean_iop"
	EstimatorTrimean    Estimator = "trimean_iop"
	EstimatorIQM        Estimator = "iqm_iop"
	EstimatorWinsorized Estimator = "winsorized_iop"
	EstimatorWeighted   Estimator = "weighted_iop"
)

// Estimators lists all point-estimate methods in order of clinical
// importance, primary first.
var Estimators = []Estimator{
	EstimatorSafe,
	EstimatorPossible,
	EstimatorClinical,
	EstimatorMean,
	EstimatorTrimean,
	EstimatorIQM,
	EstimatorWinsorized,
	EstimatorWeighted,
}

// ClinicalCategory is the clinical reading of an IOP value.
type ClinicalCategory string

const (
	CategorySevereHypotony     ClinicalCategory = "Severe Hypotony"
	CategoryModerateHypotony   ClinicalCategory = "Moderate Hypotony"
	CategoryMildHypotony       ClinicalCategory = "Mild Hypotony"
	CategoryNormal             ClinicalCategory = "Normal Range"
	CategoryBorderlineElevated ClinicalCategory = "Borderline Elevated"
	CategoryElevated           ClinicalCategory = "Elevated"
	CategorySeverelyElevated   ClinicalCategory = "Severely Elevated"
)

// Confidence grades how consistent the readings were with each other.
type Confidence string

const (
	ConfidenceExcellent Confidence = "excellent"
	ConfidenceGood      Confidence = "good"
	ConfidenceFair      Confidence = "fair"
	ConfidencePoor      Confidence = "poor"
)

// Status is the presentation tag derived from a clinical category.
type Status string

const (
	StatusAlert   Status = "alert"
	StatusNormal  Status = "normal"
	StatusCaution Status = "caution"
)

// Report bundles every estimate, dispersion statistic and clinical advisory
// computed from one sample. It is created once per sample and never mutated.
type Report struct {
	SafeIOP       float64 `json:"safe_iop"`
	PossibleIOP   float64 `json:"possible_iop"`
	ClinicalIOP   float64 `json:"clinical_iop"`
	MeanIOP       float64 `json:"mean_iop"`
	TrimeanIOP    float64 `json:"trimean_iop"`
	IQMIOP        float64 `json:"iqm_iop"`
	WinsorizedIOP float64 `json:"winsorized_iop"`
	WeightedIOP   float64 `json:"weighted_iop"`

	MinIOP        float64 `json:"min_iop"`
	MaxIOP        float64 `json:"max_iop"`
	Variability   float64 `json:"variability"`
	StdDev        float64 `json:"std_dev"`
	NMeasurements int     `json:"n_measurements"`

	Interpretation ClinicalCategory `json:"interpretation"`
	Status         Status           `json:"status"`
	Confidence     Confidence       `json:"confidence"`
	ConfidenceNote string           `json:"confidence_note"`
}

// Estimates returns the eight point estimates keyed by estimator name.
func (r Report) Estimates() map[Estimator]float64 {
	return map[Estimator]float64{
		EstimatorSafe:       r.SafeIOP,
		EstimatorPossible:   r.PossibleIOP,
		EstimatorClinical:   r.ClinicalIOP,
		EstimatorMean:       r.MeanIOP,
		EstimatorTrimean:    r.TrimeanIOP,
		EstimatorIQM:        r.IQMIOP,
		EstimatorWinsorized: r.WinsorizedIOP,
		EstimatorWeighted:   r.WeightedIOP,
	}
}
