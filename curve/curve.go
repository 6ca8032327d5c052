package curve

// Curve is a fittable model component. Implementations expose their
// parameters as an ordered float vector so a composite can pack any number
// of members into one flat vector for least-squares refinement.
//
// Only two variants exist: Constant (the baseline) and Gaussian (a peak).
type Curve interface {
	// ParamCount returns the arity of the parameter vector.
	ParamCount() int

	// Params returns a copy of the parameter vector.
	Params() []float64

	// SetParams applies a parameter vector in the same order returned by
	// Params. Implementations may fold values into their valid domain;
	// Gaussian reflects negatives to positive.
	SetParams(p []float64)

	// Eval returns the curve height at x using the stored parameters.
	Eval(x float64) float64

	// EvalParams returns the curve height at x using the override vector p,
	// leaving the stored parameters untouched. The vector uses the Params
	// ordering.
	EvalParams(x float64, p []float64) float64

	// Area returns the analytic area under the curve.
	Area() float64

	// Center returns the sort key for ordering within a composite. The
	// baseline reports a sentinel smaller than any valid peak center so
	// that Sort always places it first.
	Center() float64

	// Clone returns a deep copy sharing no state with the receiver.
	Clone() Curve
}
