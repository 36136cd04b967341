package main

import (
	"fmt"
	"strings"

	"findexp/ml"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// addConfigFlags registers one flag per ml.Config field, defaulting to the
// original experiment.
func addConfigFlags(flags *pflag.FlagSet) {
	def := ml.DefaultConfig()
	flags.Int("samples", def.Samples, "number of examples")
	flags.Float64("lr", def.LearningRate, "learning rate")
	flags.Float64("target-exp", def.TargetExp, "real value of the exponent to find")
	flags.Float64("init-exp", def.InitialExp, "starting value of the estimate")
	flags.Int("iterations", def.Iterations, "number of gradient descent steps")
	flags.Int64("seed", def.Seed, "seed for sample generation")
	flags.String("loss", def.Loss, "loss reduction: sum or mean")
	flags.String("gradient", def.Gradient, "differentiation: autodiff or numeric")

	flags.String("config", "", "optional config file")
	flags.String("history", "", "write the loss and exponent history to this file")
	flags.Bool("verbose", false, "debug logging")
}

// loadConfig resolves settings from flags, FINDEXP_* environment variables
// and an optional config file, in that order of precedence.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (ml.Config, error) {
	v.SetEnvPrefix("findexp")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return ml.Config{}, err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return ml.Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := ml.Config{
		Samples:      v.GetInt("samples"),
		LearningRate: v.GetFloat64("lr"),
		TargetExp:    v.GetFloat64("target-exp"),
		InitialExp:   v.GetFloat64("init-exp"),
		Iterations:   v.GetInt("iterations"),
		Seed:         v.GetInt64("seed"),
		Loss:         v.GetString("loss"),
		Gradient:     v.GetString("gradient"),
	}
	return cfg, cfg.Validate()
}
