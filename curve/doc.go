// Package curve provides the curve model used for profile decomposition:
// a constant baseline, amplitude-form Gaussian peaks, and a composite that
// evaluates a collection of both as a single model with one flat parameter
// vector.
//
// The flat vector layout is position dependent: the composite keeps an
// explicit offset table, rebuilt on every membership change, so Params,
// SetParams and EvalParams always agree on which slice of the vector belongs
// to which member.
//
// # Usage
//
//	model := curve.NewComposite()
//	model.Add(curve.NewConstant(1))
//	model.Add(curve.NewGaussian(50, 100, 2.5))
//	y := model.Eval(48.0)
package curve
