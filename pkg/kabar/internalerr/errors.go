package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrMissingFile       = errors.New("data file not found")
	ErrEmptyDataset      = errors.New("dataset is empty")
	ErrNoModel           = errors.New("pipeline has not been fitted")
	ErrDimensionMismatch = errors.New("feature dimension mismatch")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
