package validation

import (
	"strconv"
	"strings"

	"github.com/edujbarrios/real-iop-estimator/domain/core"
	"github.com/edujbarrios/real-iop-estimator/domain/sample"
	"github.com/edujbarrios/real-iop-estimator/internal/config"
)

// Parse turns one line of comma-separated tonometer readings into a
// validated Sample. Tokens are trimmed and empty tokens dropped before
// parsing; every value must lie within the configured bounds and at least
// cfg.MinCount values must remain. The returned sample is sorted ascending.
func Parse(raw string, cfg config.MeasurementConfig) (sample.Sample, error) {
	tokens := strings.Split(raw, ",")
	values := make([]float64, 0, len(tokens))

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return sample.Sample{}, core.NewParseError(token)
		}
		values = append(values, value)
	}

	if len(values) == 0 {
		return sample.Sample{}, core.NewEmptyInputError()
	}

	for _, value := range values {
		if value < cfg.MinValue || value > cfg.MaxValue {
			return sample.Sample{}, core.NewRangeError(value, cfg.MinValue, cfg.MaxValue)
		}
	}

	if len(values) < cfg.MinCount {
		return sample.Sample{}, core.NewInsufficientDataError(len(values), cfg.MinCount)
	}

	return sample.New(values)
}
