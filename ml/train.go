package ml

import (
	"context"
	"time"

	"findexp/util"
)

// Result is the outcome of a training run. Both histories hold one entry
// per completed iteration, in order.
type Result struct {
	LossHistory []float64
	ExpHistory  []float64
	FinalExp    float64
}

// Observer is called once per iteration with the loss and the estimate
// that produced it, before the estimate is updated.
type Observer func(iter int, loss, exp float64)

// Train runs cfg.Iterations steps of gradient descent on mlp. There is no
// early stopping. If ctx is cancelled between iterations the partial
// result is returned with ctx.Err().
func Train(ctx context.Context, cfg Config, mlp MLProcess, observe Observer) (Result, error) {
	res := Result{
		LossHistory: make([]float64, 0, cfg.Iterations),
		ExpHistory:  make([]float64, 0, cfg.Iterations),
	}
	startTime := time.Now()
	for iter := 0; iter < cfg.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			res.FinalExp = mlp.Exponent()
			return res, err
		}
		exp := mlp.Exponent()
		grads := mlp.GetGradients()

		res.LossHistory = append(res.LossHistory, grads.Loss)
		res.ExpHistory = append(res.ExpHistory, exp)
		if observe != nil {
			observe(iter, grads.Loss, exp)
		}

		mlp.UpdateModel(grads)
	}
	res.FinalExp = mlp.Exponent()
	util.Debug("trained " + cfg.Gradient + " model in " + time.Since(startTime).String())
	return res, nil
}

// Run validates cfg, generates the dataset and trains a fresh process.
func Run(ctx context.Context, cfg Config, observe Observer) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	data := MakeDataset(cfg.Samples, cfg.TargetExp, cfg.Seed)
	mlp, err := NewProcess(cfg, data)
	if err != nil {
		return Result{}, err
	}
	return Train(ctx, cfg, mlp, observe)
}
