package ml

import (
	"errors"
	"fmt"
	"math"
)

// Loss modes.
const (
	// LossSum takes the square root of the total squared error.
	LossSum = "sum"
	// LossMean takes the square root of the per-sample mean squared error.
	LossMean = "mean"
)

// Gradient modes.
const (
	GradientAutodiff = "autodiff"
	GradientNumeric  = "numeric"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds every setting of a training run.
type Config struct {
	Samples      int
	LearningRate float64
	TargetExp    float64
	InitialExp   float64
	Iterations   int
	Seed         int64
	Loss         string
	Gradient     string
}

// DefaultConfig reproduces the original experiment.
func DefaultConfig() Config {
	return Config{
		Samples:      100,
		LearningRate: 5e-6,
		TargetExp:    2.0,
		InitialExp:   4.0,
		Iterations:   200,
		Seed:         1,
		Loss:         LossSum,
		Gradient:     GradientAutodiff,
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (cfg Config) Validate() error {
	switch {
	case cfg.Samples <= 0:
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, cfg.Samples)
	case cfg.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, cfg.Iterations)
	case !finite(cfg.LearningRate) || cfg.LearningRate <= 0:
		return fmt.Errorf("%w: learning rate must be a positive number, got %v", ErrInvalidConfig, cfg.LearningRate)
	case !finite(cfg.TargetExp):
		return fmt.Errorf("%w: target exponent %v", ErrInvalidConfig, cfg.TargetExp)
	case !finite(cfg.InitialExp):
		return fmt.Errorf("%w: initial exponent %v", ErrInvalidConfig, cfg.InitialExp)
	}
	switch cfg.Loss {
	case LossSum, LossMean:
	default:
		return fmt.Errorf("%w: unknown loss %q", ErrInvalidConfig, cfg.Loss)
	}
	switch cfg.Gradient {
	case GradientAutodiff, GradientNumeric:
	default:
		return fmt.Errorf("%w: unknown gradient mode %q", ErrInvalidConfig, cfg.Gradient)
	}
	return nil
}
