package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-peakfit/curve"
	"github.com/cwbudde/algo-peakfit/smooth"
)

const (
	// maxPeakWidth rejects candidates whose implied width exceeds this many
	// x-units; broader bumps are treated as baseline drift, not peaks.
	maxPeakWidth = 3.0

	// minHeightFactor rejects candidates lower above the baseline estimate
	// than this fraction of the smoothed data's vertical range.
	minHeightFactor = 0.5
)

// Estimate proposes a composite curve for the profile (x, y) from scratch:
// a constant baseline seeded with the first smoothed sample plus one
// Gaussian per accepted peak candidate. Candidates are the zero crossings of
// the first derivative of the smoothed data, accepted only when the second
// derivative is negative there (a local maximum), the width implied by the
// local curvature stays under maxPeakWidth, and the height above baseline
// exceeds minHeightFactor of the smoothed vertical range. The thresholds are
// deliberately conservative so noise is not over-fitted as peaks.
//
// x must be ascending with uniform spacing; the derivative step is taken
// from the first interval and results are undefined otherwise. Profiles
// shorter than the smoothing window fail with an error wrapping ErrEstimate
// (and smooth.ErrTooFewSamples); the series is never silently truncated.
//
// The result is a starting point, not a final fit: Estimate does not chain
// Optimize, callers are expected to run a refinement pass afterwards.
func Estimate(x, y []float64) (*curve.Composite, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}

	if len(x) == 0 {
		return nil, ErrNoData
	}

	if len(x) < 2 {
		return nil, fmt.Errorf("%w: need at least two samples", ErrEstimate)
	}

	sm, err := smooth.SavitzkyGolay(y)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEstimate, err)
	}

	h := x[1] - x[0]
	if h <= 0 {
		return nil, fmt.Errorf("%w: x spacing must be positive", ErrEstimate)
	}

	dy := Derivative(sm, h)
	ddy := Derivative(dy, h)

	est := curve.NewComposite()
	est.Add(curve.NewConstant(sm[0]))

	minHeight := minHeightFactor * (floats.Max(sm) - sm[0])

	for _, i := range zeroCrossings(dy) {
		if ddy[i] >= 0 {
			continue
		}

		// Width implied by the local curvature of a Gaussian apex, where
		// y'' = -y/w^2. A negative ratio yields NaN and fails the cap.
		w := math.Sqrt(-sm[i] / ddy[i])
		height := sm[i] - sm[0]

		if w < maxPeakWidth && height > minHeight {
			est.Add(curve.NewGaussian(x[i], height, w))
		}
	}

	return est, nil
}
