package curve

// baselineCenter sorts the baseline before every peak; peak centers are
// folded to be non-negative.
const baselineCenter = -1

// Constant is the horizontal baseline of a composite: a single vertical
// offset applied across the whole x range.
type Constant struct {
	y float64
}

// NewConstant returns a baseline at the given offset.
func NewConstant(y float64) *Constant {
	return &Constant{y: y}
}

// ParamCount returns 1.
func (c *Constant) ParamCount() int { return 1 }

// Params returns the offset as a one-element vector.
func (c *Constant) Params() []float64 { return []float64{c.y} }

// SetParams applies the offset from p[0]. An empty vector leaves the
// baseline unchanged.
func (c *Constant) SetParams(p []float64) {
	if len(p) > 0 {
		c.y = p[0]
	}
}

// Offset returns the baseline offset.
func (c *Constant) Offset() float64 { return c.y }

// SetOffset sets the baseline offset.
func (c *Constant) SetOffset(y float64) { c.y = y }

// Eval returns the offset for any x.
func (c *Constant) Eval(_ float64) float64 { return c.y }

// EvalParams returns p[0] for any x, or the stored offset when p is empty.
func (c *Constant) EvalParams(_ float64, p []float64) float64 {
	if len(p) > 0 {
		return p[0]
	}

	return c.y
}

// Area returns 0; the baseline never contributes to peak quantification.
func (c *Constant) Area() float64 { return 0 }

// Center returns the baseline sentinel so Sort places the baseline first.
func (c *Constant) Center() float64 { return baselineCenter }

// Clone returns an independent copy.
func (c *Constant) Clone() Curve {
	cp := *c
	return &cp
}
