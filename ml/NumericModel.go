package ml

import "gonum.org/v1/gonum/diff/fd"

// NumericModel estimates the same exponent as ExponentModel but takes the
// gradient by central finite differences. It is slower and less exact, and
// serves as a cross-check of the tape gradient.
type NumericModel struct {
	estimate
	data Dataset
	loss string
}

// MakeNumericModel starts the estimate at cfg.InitialExp.
func MakeNumericModel(cfg Config, data Dataset) *NumericModel {
	return &NumericModel{
		estimate: estimate{exp: cfg.InitialExp, lr: cfg.LearningRate},
		data:     data,
		loss:     cfg.Loss,
	}
}

func (model *NumericModel) lossAt(e float64) float64 {
	return Loss(model.loss, model.data.Y, Forward(model.data.X, e))
}

// GetGradients reports the loss of the current estimate and its central
// difference derivative.
func (model *NumericModel) GetGradients() Gradients {
	loss := model.lossAt(model.exp)
	grad := fd.Derivative(model.lossAt, model.exp, &fd.Settings{
		Formula:     fd.Central,
		OriginKnown: true,
		OriginValue: loss,
	})
	return Gradients{Loss: loss, Exp: grad}
}
