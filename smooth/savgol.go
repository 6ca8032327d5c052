package smooth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

const (
	// Window is the fixed smoothing window length, in samples, used by the
	// peak estimator.
	Window = 21

	// Order is the polynomial order fitted inside each window.
	Order = 4
)

// Errors returned by the smoothing functions.
var (
	ErrTooFewSamples = errors.New("smooth: series shorter than the filter window")
	ErrInvalidWindow = errors.New("smooth: window must be odd and larger than the polynomial order")
)

// SavitzkyGolay smooths y with the fixed 21-point, 4th-order filter.
func SavitzkyGolay(y []float64) ([]float64, error) {
	return Filter(y, Window, Order)
}

// Filter smooths y with a Savitzky-Golay filter of the given window length
// and polynomial order. Interior samples use the central least-squares row;
// samples within half a window of either end use the matching rows of the
// first and last full window, which evaluates the edge-window polynomial fit
// at those positions instead of shrinking the window.
func Filter(y []float64, window, order int) ([]float64, error) {
	if window < 1 || window%2 == 0 || order < 0 || order >= window {
		return nil, ErrInvalidWindow
	}

	if len(y) < window {
		return nil, ErrTooFewSamples
	}

	p, err := projection(window, order)
	if err != nil {
		return nil, err
	}

	n := len(y)
	half := window / 2
	out := make([]float64, n)
	scratch := make([]float64, window)

	for i := range out {
		switch {
		case i < half:
			out[i] = dot(scratch, p.RawRowView(i), y[:window])
		case i >= n-half:
			out[i] = dot(scratch, p.RawRowView(window-(n-i)), y[n-window:])
		default:
			out[i] = dot(scratch, p.RawRowView(half), y[i-half:i+half+1])
		}
	}

	return out, nil
}

// projection returns P = V (V^T V)^-1 V^T for the centered Vandermonde
// matrix V of the window. Row r of P maps a window of samples to the value
// of its least-squares polynomial at offset r - window/2.
func projection(window, order int) (*mat.Dense, error) {
	half := window / 2
	v := mat.NewDense(window, order+1, nil)

	for i := 0; i < window; i++ {
		e := 1.0
		for j := 0; j <= order; j++ {
			v.Set(i, j, e)
			e *= float64(i - half)
		}
	}

	var vtv mat.Dense
	vtv.Mul(v.T(), v)

	var inv mat.Dense
	if err := inv.Inverse(&vtv); err != nil {
		return nil, fmt.Errorf("smooth: singular design matrix: %w", err)
	}

	var vinv mat.Dense
	vinv.Mul(v, &inv)

	var p mat.Dense
	p.Mul(&vinv, v.T())

	return &p, nil
}

func dot(scratch, coeffs, samples []float64) float64 {
	vecmath.MulBlock(scratch, coeffs, samples)

	sum := 0.0
	for _, v := range scratch {
		sum += v
	}

	return sum
}
