package config

import (
	"math"
	"os"
	"strconv"

	"github.com/edujbarrios/real-iop-estimator/domain/estimate"
	"github.com/edujbarrios/real-iop-estimator/domain/sample"
	"github.com/edujbarrios/real-iop-estimator/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server      ServerConfig
	Measurement MeasurementConfig
	Clinical    ClinicalConfig
	Confidence  ConfidenceConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// MeasurementConfig constrains what the validator accepts
type MeasurementConfig struct {
	MinCount int
	MinValue float64
	MaxValue float64
}

// ClinicalBand binds one clinical category to a half-open pressure
// interval [Low, High) in mmHg.
type ClinicalBand struct {
	Category estimate.ClinicalCategory
	Low      float64
	High     float64
}

// ClinicalConfig holds the ordered interpretation table. The bands
// partition [0, +Inf) with no gaps or overlaps; the last band is
// open-ended.
type ClinicalConfig struct {
	Bands []ClinicalBand
}

// ConfidenceConfig holds the reading-range thresholds (mmHg) separating
// the consistency tiers.
type ConfidenceConfig struct {
	Excellent float64
	Good      float64
	Fair      float64
}

// DefaultClinicalBands returns the interpretation table, band boundaries
// per the European Glaucoma Society terminology.
func DefaultClinicalBands() []ClinicalBand {
	return []ClinicalBand{
		{Category: estimate.CategorySevereHypotony, Low: 0, High: 6},
		{Category: estimate.CategoryModerateHypotony, Low: 6, High: 8},
		{Category: estimate.CategoryMildHypotony, Low: 8, High: 10},
		{Category: estimate.CategoryNormal, Low: 10, High: 21},
		{Category: estimate.CategoryBorderlineElevated, Low: 21, High: 24},
		{Category: estimate.CategoryElevated, Low: 24, High: 30},
		{Category: estimate.CategorySeverelyElevated, Low: 30, High: math.Inf(1)},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    "8080",
			GinMode: "release",
		},
		Measurement: MeasurementConfig{
			MinCount: sample.MinSize,
			MinValue: 0,
			MaxValue: 100,
		},
		Clinical: ClinicalConfig{
			Bands: DefaultClinicalBands(),
		},
		Confidence: ConfidenceConfig{
			Excellent: 2,
			Good:      4,
			Fair:      6,
		},
	}
}

// Load returns the default configuration overridden by environment
// variables, validated.
func Load() (*Config, error) {
	config := Default()

	config.Server.Port = getEnvOrDefault("PORT", config.Server.Port)
	config.Server.GinMode = getEnvOrDefault("GIN_MODE", config.Server.GinMode)
	config.Measurement.MinCount = getEnvIntOrDefault("MIN_MEASUREMENTS", config.Measurement.MinCount)

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Measurement.MinCount < sample.MinSize {
		return errors.ConfigInvalid("minimum measurement count cannot be below 3")
	}
	if config.Measurement.MinValue >= config.Measurement.MaxValue {
		return errors.ConfigInvalid("measurement bounds are inverted")
	}
	if err := validateBands(config.Clinical.Bands); err != nil {
		return err
	}
	c := config.Confidence
	if !(c.Excellent > 0 && c.Excellent < c.Good && c.Good < c.Fair) {
		return errors.ConfigInvalid("confidence thresholds must be positive and ascending")
	}
	return nil
}

// validateBands checks the interpretation table is contiguous: it must
// start at 0, each band must end where the next begins, and the table
// must be open-ended at the top.
func validateBands(bands []ClinicalBand) error {
	if len(bands) == 0 {
		return errors.ConfigInvalid("clinical band table is empty")
	}
	if bands[0].Low != 0 {
		return errors.ConfigInvalid("clinical bands must start at 0 mmHg")
	}
	for i, band := range bands {
		if band.Low >= band.High {
			return errors.ConfigInvalid("clinical band interval is inverted")
		}
		if i > 0 && bands[i-1].High != band.Low {
			return errors.ConfigInvalid("clinical bands must be contiguous")
		}
	}
	if !math.IsInf(bands[len(bands)-1].High, 1) {
		return errors.ConfigInvalid("last clinical band must be open-ended")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
