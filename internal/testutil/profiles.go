package testutil

import "math"

// GaussianPeak describes one synthetic peak for profile generation.
type GaussianPeak struct {
	Center    float64
	Amplitude float64
	Width     float64
}

// Ramp returns n evenly spaced x values starting at x0 with the given step.
func Ramp(x0, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = x0 + step*float64(i)
	}

	return out
}

// Noise returns a deterministic pseudo-random series in (-amplitude,
// amplitude), reproducible across runs and platforms.
func Noise(amplitude float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		v := math.Sin(float64(i)*12.9898) * 43758.5453
		out[i] = amplitude * (2*(v-math.Floor(v)) - 1)
	}

	return out
}

// Profile evaluates baseline plus the given peaks at every x.
func Profile(x []float64, baseline float64, peaks ...GaussianPeak) []float64 {
	out := make([]float64, len(x))

	for i, xv := range x {
		y := baseline
		for _, p := range peaks {
			t := (xv - p.Center) / p.Width
			y += p.Amplitude * math.Exp(-0.5*t*t)
		}

		out[i] = y
	}

	return out
}
