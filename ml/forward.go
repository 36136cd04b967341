package ml

import "math"

// Forward returns xs[i]^e for every i.
func Forward(xs []float64, e float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Pow(x, e)
	}
	return out
}
