package ml

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RMSE is sqrt(mean(sum((y - yHat)^2))). The mean runs over the single
// summed value, so this is the square root of the total squared error,
// accumulated in index order.
func RMSE(y, yHat []float64) float64 {
	d := make([]float64, len(y))
	floats.SubTo(d, y, yHat)
	var total float64
	for _, v := range d {
		total += v * v
	}
	return math.Sqrt(total)
}

// MeanRMSE is the per-sample root mean squared error.
func MeanRMSE(y, yHat []float64) float64 {
	sq := make([]float64, len(y))
	floats.SubTo(sq, y, yHat)
	floats.Mul(sq, sq)
	return math.Sqrt(stat.Mean(sq, nil))
}

// Loss evaluates the loss selected by kind.
func Loss(kind string, y, yHat []float64) float64 {
	if kind == LossMean {
		return MeanRMSE(y, yHat)
	}
	return RMSE(y, yHat)
}
