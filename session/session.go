package session

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-peakfit/curve"
	"github.com/cwbudde/algo-peakfit/fit"
	"github.com/cwbudde/algo-peakfit/history"
	"github.com/cwbudde/algo-peakfit/profile"
)

// defaultWidthDivisor derives the width of a newly added peak from the
// profile's x range.
const defaultWidthDivisor = 20

// Session holds the state of one loaded profile and applies user-driven
// edits to its active composite curve.
type Session struct {
	prof   *profile.Profile
	active *curve.Composite
	hist   *history.History

	lockedWidth float64
	widthLocked bool

	// OnStatus, when set, receives user-facing status messages such as
	// "Fit found." It must not call back into the session.
	OnStatus func(string)
}

// New activates the profile: the session starts with a baseline-only
// composite seeded at offset 1, recorded as the first history entry.
func New(p *profile.Profile) *Session {
	s := &Session{prof: p, hist: history.New()}
	s.seed()

	return s
}

// Profile returns the session's dataset.
func (s *Session) Profile() *profile.Profile { return s.prof }

// Active returns the active composite. Callers mutate it only through the
// session's reducers; fits and undo/redo replace it wholesale.
func (s *Session) Active() *curve.Composite { return s.active }

// LockedWidth reports the locked width value if the mode is active.
func (s *Session) LockedWidth() (float64, bool) {
	return s.lockedWidth, s.widthLocked
}

// ResetFit discards the current fit and reseeds the baseline-only composite.
func (s *Session) ResetFit() {
	s.seed()
	s.status("Fit reset.")
}

// DragHandle applies a plain drag of member i's handle to cursor position
// (x, y): a peak follows the cursor in center and amplitude with its width
// unchanged, the baseline follows only in offset.
func (s *Session) DragHandle(i int, x, y float64) {
	switch c := s.active.At(i).(type) {
	case *curve.Gaussian:
		c.SetCenter(x)
		c.SetAmplitude(y)
	case *curve.Constant:
		c.SetOffset(y)
	}
}

// ShiftDragHandle applies a shift drag of member i's handle: a peak's
// amplitude follows the cursor and its width becomes the horizontal distance
// from the initial click. When widths are locked the new width becomes the
// locked value and is propagated to every peak. The baseline behaves as in
// DragHandle.
func (s *Session) ShiftDragHandle(i int, x, y, clickX float64) {
	switch c := s.active.At(i).(type) {
	case *curve.Gaussian:
		c.SetAmplitude(y)
		c.SetWidth(clickX - x)

		if s.widthLocked {
			s.lockedWidth = c.Width()
			s.propagateWidth()
		}
	case *curve.Constant:
		c.SetOffset(y)
	}
}

// ToggleLockedWidths flips the locked-widths mode. Turning it on snaps the
// lock to the first peak's current width and propagates it to every peak;
// turning it off clears the lock without altering current widths. With no
// peaks present this is a no-op.
func (s *Session) ToggleLockedWidths() {
	peaks := s.active.Peaks()
	if len(peaks) == 0 {
		return
	}

	if s.widthLocked {
		s.widthLocked = false
		return
	}

	s.widthLocked = true
	s.lockedWidth = peaks[0].Width()
	s.propagateWidth()
	s.status(fmt.Sprintf("Gaussian widths fixed to %.2f", s.lockedWidth))
}

// AddPeak appends a Gaussian at center x with the given amplitude. Its width
// is the locked value when the mode is active, otherwise a default derived
// from the profile's x range.
func (s *Session) AddPeak(x, amplitude float64) {
	s.active.Add(curve.NewGaussian(x, amplitude, s.defaultWidth()))
	s.CommitEdit()
	s.status(fmt.Sprintf("Gaussian added at (%.2f, %.2f).", x, amplitude))
}

// DeletePeak removes the i-th peak (0-based, member order, baseline not
// counted). Out-of-range indices are ignored; the baseline itself is not
// addressable as a peak.
func (s *Session) DeletePeak(i int) {
	peaks := s.active.Peaks()
	if i < 0 || i >= len(peaks) {
		return
	}

	s.active.Remove(peaks[i])
	s.CommitEdit()
	s.status("Gaussian deleted.")
}

// CommitEdit records the current composite in the undo history if its
// parameters differ from the most recent entry. Event sources call it once
// per completed gesture (mouse release), not per motion event.
func (s *Session) CommitEdit() {
	if head, ok := s.hist.Peek(); ok && floats.Equal(head.Params(), s.active.Params()) {
		return
	}

	s.hist.Push(s.active)
}

// OptimizeFit refines the active composite against the profile data. On
// success the composite is replaced wholesale and recorded in the history.
// A convergence failure leaves the previous fit untouched; it is reported
// through the status callback and returned as fit.ErrNoConvergence so that
// callers can distinguish it from fatal errors, which are returned after a
// status emission rather than being swallowed.
func (s *Session) OptimizeFit() error {
	fitted, err := fit.Optimize(s.prof.X, s.prof.Y, s.active)

	switch {
	case err == nil:
		s.active = fitted
		s.CommitEdit()
		s.status("Fit found.")

		return nil
	case errors.Is(err, fit.ErrNoConvergence):
		s.status("An optimal fit was not found.")
		return err
	default:
		s.status("An error occurred during fitting.")
		return err
	}
}

// EstimateFit proposes a fresh composite from the raw data and immediately
// chains an optimization pass; the estimate is a starting point, not a
// final fit. An estimation failure (fit.ErrEstimate) leaves the session
// untouched: nothing is produced and nothing reaches the history.
func (s *Session) EstimateFit() error {
	estimated, err := fit.Estimate(s.prof.X, s.prof.Y)
	if err != nil {
		if errors.Is(err, fit.ErrEstimate) {
			s.status("An estimate could not be calculated.")
			return err
		}

		s.status("An error occurred during estimation.")

		return err
	}

	s.active = estimated
	s.CommitEdit()

	return s.OptimizeFit()
}

// Undo restores the previous fit state as an independent copy. At the
// history boundary it emits a neutral status and changes nothing.
func (s *Session) Undo() {
	c, ok := s.hist.Undo()
	if !ok {
		s.status("Nothing to undo.")
		return
	}

	s.active = c
	s.status("Undo.")
}

// Redo restores the next fit state as an independent copy. At the head of
// the history it emits a neutral status and changes nothing.
func (s *Session) Redo() {
	c, ok := s.hist.Redo()
	if !ok {
		s.status("Nothing to redo.")
		return
	}

	s.active = c
	s.status("Redo.")
}

func (s *Session) seed() {
	s.active = curve.NewComposite()
	s.active.Add(curve.NewConstant(1))
	s.hist.Push(s.active)
}

func (s *Session) defaultWidth() float64 {
	if s.widthLocked {
		return s.lockedWidth
	}

	xs := s.prof.X

	return (xs[len(xs)-1] - xs[0]) / defaultWidthDivisor
}

func (s *Session) propagateWidth() {
	for _, g := range s.active.Peaks() {
		g.SetWidth(s.lockedWidth)
	}
}

func (s *Session) status(msg string) {
	if s.OnStatus != nil {
		s.OnStatus(msg)
	}
}
