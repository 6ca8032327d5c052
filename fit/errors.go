package fit

import "errors"

// Errors returned by the fitting engine. ErrNoConvergence and ErrEstimate
// are recoverable user-level outcomes; the rest indicate invalid input.
var (
	ErrNoConvergence  = errors.New("fit: optimizer did not converge")
	ErrEstimate       = errors.New("fit: estimate failed")
	ErrLengthMismatch = errors.New("fit: x and y must have the same length")
	ErrNoData         = errors.New("fit: empty data")
	ErrNoParams       = errors.New("fit: model has no parameters")
	ErrTooFewPoints   = errors.New("fit: fewer samples than free parameters")
)
