package ml

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleRange is the exclusive upper bound of generated inputs.
const SampleRange = 10.0

// Dataset is generated once and never modified.
type Dataset struct {
	X []float64
	Y []float64
}

// GenerateSamples draws n inputs uniformly from [0, SampleRange).
// The same seed always yields the same samples.
func GenerateSamples(n int, seed int64) []float64 {
	u := distuv.Uniform{Min: 0, Max: SampleRange, Src: rand.NewSource(uint64(seed))}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = u.Rand()
	}
	return xs
}

// MakeDataset draws the inputs and raises them to targetExp.
func MakeDataset(n int, targetExp float64, seed int64) Dataset {
	return MakeDatasetFrom(GenerateSamples(n, seed), targetExp)
}

// MakeDatasetFrom builds a dataset from fixed inputs.
func MakeDatasetFrom(xs []float64, targetExp float64) Dataset {
	return Dataset{X: xs, Y: Forward(xs, targetExp)}
}
