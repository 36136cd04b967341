package ml

import (
	"math"

	"github.com/born-ml/born/autodiff"
	"github.com/born-ml/born/backend/cpu"
	"github.com/born-ml/born/tensor"
)

type tape = autodiff.Backend[*cpu.Backend]

// ExponentModel estimates e in y = x^e. The loss is recorded on a born
// gradient tape as sqrt(...(y - exp(e*ln x))^2) and differentiated in
// reverse mode.
type ExponentModel struct {
	estimate
	data Dataset
	loss string
	// logX holds ln x with zero bases replaced by 0; mask zeroes their
	// predictions so 0^e contributes neither value nor gradient.
	logX []float64
	mask []float64
}

// MakeExponentModel starts the estimate at cfg.InitialExp.
func MakeExponentModel(cfg Config, data Dataset) *ExponentModel {
	logX := make([]float64, len(data.X))
	mask := make([]float64, len(data.X))
	for i, x := range data.X {
		if x != 0 {
			logX[i] = math.Log(x)
			mask[i] = 1
		}
	}
	return &ExponentModel{
		estimate: estimate{exp: cfg.InitialExp, lr: cfg.LearningRate},
		data:     data,
		loss:     cfg.Loss,
		logX:     logX,
		mask:     mask,
	}
}

// GetGradients reports the loss of the current estimate and its gradient.
// Every call records on a new tape, so gradients never accumulate.
func (model *ExponentModel) GetGradients() Gradients {
	loss := Loss(model.loss, model.data.Y, Forward(model.data.X, model.exp))
	if loss == 0 {
		return Gradients{Loss: 0, Exp: 0}
	}
	return Gradients{Loss: loss, Exp: model.backward()}
}

func (model *ExponentModel) backward() float64 {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	n := len(model.data.X)
	e := mustSlice([]float64{model.exp}, tensor.Shape{1}, backend)
	logX := mustSlice(model.logX, tensor.Shape{n}, backend)
	mask := mustSlice(model.mask, tensor.Shape{n}, backend)
	y := mustSlice(model.data.Y, tensor.Shape{n}, backend)

	yHat := logX.Mul(e).Exp().Mul(mask)
	diff := y.Sub(yHat)
	sq := diff.Mul(diff)

	var reduced *tensor.Tensor[float64, *tape]
	if model.loss == LossMean {
		reduced = sq.MeanDim(0, true)
	} else {
		reduced = sq.SumDim(0, true).MeanDim(0, true)
	}
	loss := reduced.Sqrt()
	if loss.Data()[0] == 0 {
		return 0
	}

	grads := autodiff.Backward(loss, backend)
	grad, ok := grads[e.Raw()]
	if !ok || grad == nil {
		return 0
	}
	return grad.AsFloat64()[0]
}

func mustSlice(data []float64, shape tensor.Shape, backend *tape) *tensor.Tensor[float64, *tape] {
	t, err := tensor.FromSlice(data, shape, backend)
	if err != nil {
		panic(err)
	}
	return t
}
