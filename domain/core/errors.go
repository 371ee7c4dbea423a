package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors raised while turning raw input into a sample
	ErrParse            = errors.New("invalid measurement input")
	ErrOutOfRange       = errors.New("measurement out of range")
	ErrInsufficientData = errors.New("insufficient measurements")
)

// Error constructors with context
func NewParseError(token string) error {
	return fmt.Errorf("%w: %q is not a valid number", ErrParse, token)
}

func NewEmptyInputError() error {
	return fmt.Errorf("%w: no values found", ErrParse)
}

func NewRangeError(value, min, max float64) error {
	return fmt.Errorf("%w: %g mmHg is outside the acceptable range (%g-%g mmHg)", ErrOutOfRange, value, min, max)
}

func NewInsufficientDataError(got, want int) error {
	return fmt.Errorf("%w: at least %d are required for robust estimation, got %d", ErrInsufficientData, want, got)
}

// Error checking helpers
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

func IsRangeError(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

func IsInsufficientDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrParse) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrInsufficientData)
}
