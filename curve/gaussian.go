package curve

import "math"

// Gaussian is an amplitude-form Gaussian peak,
//
//	y = A * exp(-0.5*((x-xc)/w)^2)
//
// parameterized by center xc, amplitude A and width w, in that order.
// Sign is not a degree of freedom in this model: all three parameters are
// stored as absolute values and negative inputs are silently reflected.
type Gaussian struct {
	center    float64
	amplitude float64
	width     float64
}

// NewGaussian returns a peak with the given center, amplitude and width,
// each folded to its absolute value.
func NewGaussian(center, amplitude, width float64) *Gaussian {
	return &Gaussian{
		center:    math.Abs(center),
		amplitude: math.Abs(amplitude),
		width:     math.Abs(width),
	}
}

// ParamCount returns 3.
func (g *Gaussian) ParamCount() int { return 3 }

// Params returns the vector [center, amplitude, width].
func (g *Gaussian) Params() []float64 {
	return []float64{g.center, g.amplitude, g.width}
}

// SetParams applies up to three parameters in Params order, folding each to
// its absolute value. A shorter vector updates only the leading parameters.
func (g *Gaussian) SetParams(p []float64) {
	if len(p) > 0 {
		g.center = math.Abs(p[0])
	}

	if len(p) > 1 {
		g.amplitude = math.Abs(p[1])
	}

	if len(p) > 2 {
		g.width = math.Abs(p[2])
	}
}

// Center returns the peak center.
func (g *Gaussian) Center() float64 { return g.center }

// Amplitude returns the peak amplitude.
func (g *Gaussian) Amplitude() float64 { return g.amplitude }

// Width returns the peak width.
func (g *Gaussian) Width() float64 { return g.width }

// SetCenter sets the center, folded to its absolute value.
func (g *Gaussian) SetCenter(xc float64) { g.center = math.Abs(xc) }

// SetAmplitude sets the amplitude, folded to its absolute value.
func (g *Gaussian) SetAmplitude(a float64) { g.amplitude = math.Abs(a) }

// SetWidth sets the width, folded to its absolute value.
func (g *Gaussian) SetWidth(w float64) { g.width = math.Abs(w) }

// Eval returns the peak height at x using the stored parameters.
func (g *Gaussian) Eval(x float64) float64 {
	return gauss(x, g.center, g.amplitude, g.width)
}

// EvalParams returns the peak height at x using the override vector
// [center, amplitude, width], or the stored parameters when p is empty.
// Override values are used as given, without sign folding, so an optimizer
// may explore negative intermediates.
func (g *Gaussian) EvalParams(x float64, p []float64) float64 {
	if len(p) >= 3 {
		return gauss(x, p[0], p[1], p[2])
	}

	return g.Eval(x)
}

// Area returns the analytic area under the peak, 2*A*w*sqrt(pi/2).
// It is non-negative and monotonically increasing in amplitude and width.
func (g *Gaussian) Area() float64 {
	return 2 * g.amplitude * g.width * math.Sqrt(math.Pi/2)
}

// Clone returns an independent copy.
func (g *Gaussian) Clone() Curve {
	cp := *g
	return &cp
}

func gauss(x, center, amplitude, width float64) float64 {
	t := (x - center) / width
	return amplitude * math.Exp(-0.5*t*t)
}
