package fit

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-peakfit/curve"
)

const (
	maxIterations  = 200
	initialDamping = 1e-3
	maxDamping     = 1e12
	minDamping     = 1e-12

	// fdStep is the square root of the float64 machine epsilon, the usual
	// scale for forward-difference steps.
	fdStep = 1.4901161193847656e-08

	gradientTol = 1e-10
	costTol     = 1e-12
	stepTol     = 1e-12
)

// Optimize refines every parameter of initial simultaneously by nonlinear
// least squares against the profile (x, y), seeded at the composite's
// current flat parameter vector. It returns a new composite (a clone of
// initial carrying the refined parameters) and never mutates its input.
//
// The optimizer explores raw, possibly negative intermediate values; sign
// folding happens only when the refined vector is applied to the returned
// clone, by each curve's own invariant.
//
// When the minimization cannot reach a solution the returned error wraps
// ErrNoConvergence; callers recover from that outcome and must propagate
// everything else.
func Optimize(x, y []float64, initial *curve.Composite) (*curve.Composite, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}

	if len(x) == 0 {
		return nil, ErrNoData
	}

	start := initial.Params()
	if len(start) == 0 {
		return nil, ErrNoParams
	}

	if len(x) < len(start) {
		return nil, ErrTooFewPoints
	}

	refined, err := levenbergMarquardt(x, y, initial, start)
	if err != nil {
		return nil, err
	}

	fitted := initial.Clone()
	fitted.SetParams(refined)

	return fitted, nil
}

// levenbergMarquardt minimizes the sum of squared residuals between
// model.EvalParams and y, using a forward-difference Jacobian and Marquardt
// diagonal scaling of the damped normal equations.
func levenbergMarquardt(x, y []float64, model *curve.Composite, start []float64) ([]float64, error) {
	n := len(x)
	m := len(start)

	params := append([]float64(nil), start...)
	resid := make([]float64, n)

	cost := residuals(resid, x, y, model, params)
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return nil, ErrNoConvergence
	}

	jac := mat.NewDense(n, m, nil)
	grad := make([]float64, m)
	trial := make([]float64, m)
	trialResid := make([]float64, n)
	damping := initialDamping

	for iter := 0; iter < maxIterations; iter++ {
		jacobian(jac, resid, x, y, model, params)

		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)

		for j := 0; j < m; j++ {
			s := 0.0
			for i := 0; i < n; i++ {
				s += jac.At(i, j) * resid[i]
			}
			grad[j] = s
		}

		if maxAbs(grad) <= gradientTol*(1+cost) {
			return params, nil
		}

		improved := false

		for damping <= maxDamping {
			a := mat.NewDense(m, m, nil)
			a.Copy(&jtj)

			for j := 0; j < m; j++ {
				scale := jtj.At(j, j)
				if scale <= 0 {
					scale = 1
				}
				a.Set(j, j, jtj.At(j, j)+damping*scale)
			}

			b := mat.NewVecDense(m, nil)
			for j, g := range grad {
				b.SetVec(j, -g)
			}

			var step mat.VecDense
			if err := step.SolveVec(a, b); err != nil {
				damping *= 10
				continue
			}

			for j := 0; j < m; j++ {
				trial[j] = params[j] + step.AtVec(j)
			}

			trialCost := residuals(trialResid, x, y, model, trial)
			if !math.IsNaN(trialCost) && trialCost < cost {
				prev := cost
				copy(params, trial)
				copy(resid, trialResid)
				cost = trialCost

				if damping > minDamping {
					damping *= 0.1
				}

				improved = true

				if prev-cost <= costTol*(1+cost) || mat.Norm(&step, 2) <= stepTol*(1+norm(params)) {
					return params, nil
				}

				break
			}

			damping *= 10
		}

		if !improved {
			return nil, ErrNoConvergence
		}
	}

	return nil, ErrNoConvergence
}

// residuals fills dst with model(x_i)-y_i for the given parameter vector and
// returns the sum of squares.
func residuals(dst, x, y []float64, model *curve.Composite, params []float64) float64 {
	sum := 0.0

	for i := range x {
		r := model.EvalParams(x[i], params) - y[i]
		dst[i] = r
		sum += r * r
	}

	return sum
}

// jacobian fills dst with the forward-difference Jacobian of the model at
// params. resid holds the residuals at params, so the base model value at
// x[i] is resid[i]+y[i] without re-evaluation.
func jacobian(dst *mat.Dense, resid, x, y []float64, model *curve.Composite, params []float64) {
	p := append([]float64(nil), params...)

	for j := range p {
		dp := fdStep * math.Max(math.Abs(p[j]), 1)
		p[j] = params[j] + dp

		for i := range x {
			dst.Set(i, j, (model.EvalParams(x[i], p)-(resid[i]+y[i]))/dp)
		}

		p[j] = params[j]
	}
}

func maxAbs(s []float64) float64 {
	m := 0.0
	for _, v := range s {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return m
}

func norm(s []float64) float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}

	return math.Sqrt(sum)
}
