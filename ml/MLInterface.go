package ml

import "fmt"

// Gradients is one iteration's loss and the derivative of that loss with
// respect to the exponent estimate. Each call to GetGradients returns a
// fresh value.
type Gradients struct {
	Loss float64
	Exp  float64
}

// MLProcess is a trainable exponent estimate.
type MLProcess interface {
	GetGradients() Gradients
	UpdateModel(grads Gradients)
	Exponent() float64
}

// NewProcess builds the process selected by cfg.Gradient.
func NewProcess(cfg Config, data Dataset) (MLProcess, error) {
	switch cfg.Gradient {
	case GradientAutodiff:
		return MakeExponentModel(cfg, data), nil
	case GradientNumeric:
		return MakeNumericModel(cfg, data), nil
	}
	return nil, fmt.Errorf("%w: unknown gradient mode %q", ErrInvalidConfig, cfg.Gradient)
}

// estimate is the trainable exponent and its plain SGD step.
type estimate struct {
	exp float64
	lr  float64
}

// Exponent is the current estimate.
func (est *estimate) Exponent() float64 {
	return est.exp
}

// UpdateModel takes one gradient descent step.
func (est *estimate) UpdateModel(grads Gradients) {
	est.exp -= est.lr * grads.Exp
}
