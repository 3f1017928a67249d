package model

import "errors"

// ErrorKind is a stable name for a class of validation failure.
type ErrorKind string

const (
	KindDimensionMismatch  ErrorKind = "DimensionMismatch"
	KindEmptyInput         ErrorKind = "EmptyInput"
	KindInvalidProbability ErrorKind = "InvalidProbability"
	KindInvalidQuantity    ErrorKind = "InvalidQuantity"
	KindInvalidPricing     ErrorKind = "InvalidPricing"
	KindUnknown            ErrorKind = "Unknown"
)

var (
	ErrDimensionMismatch  = errors.New("dimension mismatch")
	ErrEmptyInput         = errors.New("empty input")
	ErrInvalidProbability = errors.New("invalid probability")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidPricing     = errors.New("invalid pricing")
)

// KindOf reports the ErrorKind of the first sentinel err wraps.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDimensionMismatch):
		return KindDimensionMismatch
	case errors.Is(err, ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, ErrInvalidProbability):
		return KindInvalidProbability
	case errors.Is(err, ErrInvalidQuantity):
		return KindInvalidQuantity
	case errors.Is(err, ErrInvalidPricing):
		return KindInvalidPricing
	default:
		return KindUnknown
	}
}
