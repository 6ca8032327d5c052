// Package fit refines and proposes composite curve models for 1-D intensity
// profiles.
//
// Optimize runs a damped least-squares (Levenberg-Marquardt) refinement of
// every parameter of a composite simultaneously, seeded at the composite's
// current flat parameter vector. Estimate proposes a fresh composite from
// raw data with no seed: the profile is Savitzky-Golay smoothed, peaks are
// located at first-derivative zero crossings, and each candidate is screened
// by curvature, implied width and height before becoming a Gaussian.
//
// The two failure modes a caller is expected to recover from carry distinct
// sentinels: ErrNoConvergence from Optimize and ErrEstimate from Estimate.
// Every other error indicates invalid input and should be propagated.
//
// # Usage
//
//	model, err := fit.Estimate(x, y)
//	if err != nil { ... }
//	fitted, err := fit.Optimize(x, y, model)
package fit
