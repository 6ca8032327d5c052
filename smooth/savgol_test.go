package smooth

import (
	"errors"
	"math"
	"testing"
)

func TestFilterRejectsShortSeries(t *testing.T) {
	y := make([]float64, Window-1)

	if _, err := SavitzkyGolay(y); !errors.Is(err, ErrTooFewSamples) {
		t.Fatalf("err = %v, want ErrTooFewSamples", err)
	}

	// Exactly one window is the minimum, not an error.
	if _, err := SavitzkyGolay(make([]float64, Window)); err != nil {
		t.Fatalf("err = %v for len == window, want nil", err)
	}
}

func TestFilterRejectsInvalidWindow(t *testing.T) {
	y := make([]float64, 50)

	for _, tc := range []struct {
		window, order int
	}{
		{window: 0, order: 0},
		{window: 20, order: 4},  // even
		{window: 5, order: 5},   // order not below window
		{window: 21, order: -1}, // negative order
	} {
		if _, err := Filter(y, tc.window, tc.order); !errors.Is(err, ErrInvalidWindow) {
			t.Fatalf("window=%d order=%d: err = %v, want ErrInvalidWindow", tc.window, tc.order, err)
		}
	}
}

func TestFilterPreservesLength(t *testing.T) {
	y := make([]float64, 57)

	out, err := SavitzkyGolay(y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != len(y) {
		t.Fatalf("len = %d, want %d", len(out), len(y))
	}
}

// A polynomial of degree <= the filter order must pass through unchanged,
// including the edge samples handled by the edge-window rows.
func TestFilterReproducesLowOrderPolynomials(t *testing.T) {
	n := 40

	for deg := 0; deg <= Order; deg++ {
		y := make([]float64, n)
		for i := range y {
			y[i] = math.Pow(float64(i)-15, float64(deg))
		}

		out, err := SavitzkyGolay(y)
		if err != nil {
			t.Fatalf("deg %d: unexpected error: %v", deg, err)
		}

		for i := range y {
			tol := 1e-6 * math.Max(1, math.Abs(y[i]))
			if math.Abs(out[i]-y[i]) > tol {
				t.Fatalf("deg %d: out[%d] = %v, want %v", deg, i, out[i], y[i])
			}
		}
	}
}

func TestFilterAttenuatesAlternatingNoise(t *testing.T) {
	n := 101
	y := make([]float64, n)
	for i := range y {
		if i%2 == 0 {
			y[i] = 1
		} else {
			y[i] = -1
		}
	}

	out, err := SavitzkyGolay(y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The highest representable frequency must shrink in the interior.
	for i := Window; i < n-Window; i++ {
		if math.Abs(out[i]) >= 1 {
			t.Fatalf("out[%d] = %v, interior noise not attenuated", i, out[i])
		}
	}
}
