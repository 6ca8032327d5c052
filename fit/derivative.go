package fit

// Derivative computes the numerical derivative of y using the three-point
// central difference (y[i+1]-y[i-1])/(2h). Both ends are padded by
// replicating the nearest interior value so the result keeps the input
// length. h is the sample spacing, assumed uniform. Series shorter than
// three samples have no interior point and yield all zeros.
func Derivative(y []float64, h float64) []float64 {
	out := make([]float64, len(y))
	if len(y) < 3 || h == 0 {
		return out
	}

	for i := 1; i < len(y)-1; i++ {
		out[i] = (y[i+1] - y[i-1]) / (2 * h)
	}

	out[0] = out[1]
	out[len(out)-1] = out[len(out)-2]

	return out
}

// zeroCrossings returns every index i where the sign of y changes between
// samples i and i+1. A sample that is exactly zero counts as a sign of its
// own, so a transition through zero reports a crossing on both sides.
func zeroCrossings(y []float64) []int {
	var idx []int

	for i := 0; i+1 < len(y); i++ {
		if sign(y[i]) != sign(y[i+1]) {
			idx = append(idx, i)
		}
	}

	return idx
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
