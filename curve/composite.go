package curve

import "sort"

// Composite is an ordered collection of curves evaluated as the sum of its
// members. Parameters of all members are packed into one flat vector in
// member order; a parallel offset table, rebuilt on every membership change,
// records where each member's slice of the vector begins so that Params,
// SetParams and EvalParams never depend on call-order discipline.
type Composite struct {
	members []Curve
	offsets []int
	total   int
}

// NewComposite returns an empty composite.
func NewComposite() *Composite {
	return &Composite{}
}

// Add appends a member curve.
func (c *Composite) Add(m Curve) {
	c.members = append(c.members, m)
	c.rebuildOffsets()
}

// Remove removes the first member identical to m and reports whether it was
// found.
func (c *Composite) Remove(m Curve) bool {
	for i, cur := range c.members {
		if cur == m {
			c.RemoveAt(i)
			return true
		}
	}

	return false
}

// RemoveAt removes the member at index i.
func (c *Composite) RemoveAt(i int) {
	c.members = append(c.members[:i], c.members[i+1:]...)
	c.rebuildOffsets()
}

// Len returns the number of member curves.
func (c *Composite) Len() int { return len(c.members) }

// At returns the member at index i.
func (c *Composite) At(i int) Curve { return c.members[i] }

// Baseline returns the first Constant member, or nil if none exists.
func (c *Composite) Baseline() *Constant {
	for _, m := range c.members {
		if b, ok := m.(*Constant); ok {
			return b
		}
	}

	return nil
}

// Peaks returns the Gaussian members in member order.
func (c *Composite) Peaks() []*Gaussian {
	var peaks []*Gaussian

	for _, m := range c.members {
		if g, ok := m.(*Gaussian); ok {
			peaks = append(peaks, g)
		}
	}

	return peaks
}

// ParamCount returns the total arity across all members.
func (c *Composite) ParamCount() int { return c.total }

// Params returns the concatenation of every member's parameter vector in
// member order.
func (c *Composite) Params() []float64 {
	p := make([]float64, 0, c.total)
	for _, m := range c.members {
		p = append(p, m.Params()...)
	}

	return p
}

// SetParams distributes the flat vector p across the members using the
// offset table. p must have at least ParamCount elements.
func (c *Composite) SetParams(p []float64) {
	for i, m := range c.members {
		off := c.offsets[i]
		m.SetParams(p[off : off+m.ParamCount()])
	}
}

// Eval returns the sum of every member's height at x using each member's
// stored parameters.
func (c *Composite) Eval(x float64) float64 {
	y := 0.0
	for _, m := range c.members {
		y += m.Eval(x)
	}

	return y
}

// EvalParams returns the sum of every member's height at x, with each
// member evaluated on its slice of the override vector p. The slicing uses
// the same offset table as Params and SetParams. p must have at least
// ParamCount elements.
func (c *Composite) EvalParams(x float64, p []float64) float64 {
	y := 0.0

	for i, m := range c.members {
		off := c.offsets[i]
		y += m.EvalParams(x, p[off:off+m.ParamCount()])
	}

	return y
}

// Sort orders the members by ascending center. The ordering is stable and
// idempotent; the baseline's sentinel center keeps it at index 0. Sort is
// required before exporting or rendering a parameter table so that peak
// numbering is deterministic.
func (c *Composite) Sort() {
	sort.SliceStable(c.members, func(i, j int) bool {
		return c.members[i].Center() < c.members[j].Center()
	})
	c.rebuildOffsets()
}

// Clone returns a deep copy sharing no state with the receiver.
func (c *Composite) Clone() *Composite {
	cp := &Composite{
		members: make([]Curve, len(c.members)),
		offsets: append([]int(nil), c.offsets...),
		total:   c.total,
	}
	for i, m := range c.members {
		cp.members[i] = m.Clone()
	}

	return cp
}

func (c *Composite) rebuildOffsets() {
	c.offsets = c.offsets[:0]
	c.total = 0

	for _, m := range c.members {
		c.offsets = append(c.offsets, c.total)
		c.total += m.ParamCount()
	}
}
