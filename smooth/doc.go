// Package smooth provides Savitzky-Golay polynomial smoothing for sampled
// 1-D profiles.
//
// The peak estimator uses the fixed 21-point, 4th-order variant exposed as
// SavitzkyGolay; Filter accepts arbitrary odd windows and orders. The filter
// never truncates: a series shorter than the window is rejected with
// ErrTooFewSamples.
package smooth
