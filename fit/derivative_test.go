package fit

import (
	"math"
	"testing"
)

func TestDerivativeLinearRamp(t *testing.T) {
	y := make([]float64, 20)
	for i := range y {
		y[i] = 3*float64(i) + 1
	}

	dy := Derivative(y, 0.5)

	if len(dy) != len(y) {
		t.Fatalf("len = %d, want %d", len(dy), len(y))
	}

	// Slope is 3 per index, spacing 0.5, so dy/dx = 6 everywhere.
	for i, v := range dy {
		if math.Abs(v-6) > 1e-12 {
			t.Fatalf("dy[%d] = %v, want 6", i, v)
		}
	}
}

func TestDerivativeEdgeReplication(t *testing.T) {
	y := []float64{0, 1, 4, 9, 16}
	dy := Derivative(y, 1)

	if dy[0] != dy[1] {
		t.Fatalf("leading edge not replicated: %v vs %v", dy[0], dy[1])
	}

	if dy[len(dy)-1] != dy[len(dy)-2] {
		t.Fatalf("trailing edge not replicated: %v vs %v", dy[len(dy)-1], dy[len(dy)-2])
	}

	// Interior central differences of x^2 sampled at integers: 2i.
	for i := 1; i < len(y)-1; i++ {
		if want := 2 * float64(i); dy[i] != want {
			t.Fatalf("dy[%d] = %v, want %v", i, dy[i], want)
		}
	}
}

func TestDerivativeDegenerateInputs(t *testing.T) {
	for _, y := range [][]float64{nil, {1}, {1, 2}} {
		dy := Derivative(y, 1)
		if len(dy) != len(y) {
			t.Fatalf("len = %d, want %d", len(dy), len(y))
		}

		for i, v := range dy {
			if v != 0 {
				t.Fatalf("dy[%d] = %v, want 0 for series without interior", i, v)
			}
		}
	}
}

func TestZeroCrossings(t *testing.T) {
	for _, tc := range []struct {
		name string
		y    []float64
		want []int
	}{
		{name: "single flip", y: []float64{1, 2, -1, -3}, want: []int{1}},
		{name: "through zero", y: []float64{1, 0, -1}, want: []int{0, 1}},
		{name: "no flip", y: []float64{1, 2, 3}, want: nil},
		{name: "multiple", y: []float64{-1, 1, -1, 1}, want: []int{0, 1, 2}},
	} {
		got := zeroCrossings(tc.y)

		if len(got) != len(tc.want) {
			t.Fatalf("%s: crossings = %v, want %v", tc.name, got, tc.want)
		}

		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: crossings = %v, want %v", tc.name, got, tc.want)
			}
		}
	}
}
