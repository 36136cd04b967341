package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"findexp/ml"
	"findexp/util"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "findexp",
		Short:         "Estimate the exponent of y = x^e by gradient descent",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTrainCmd())
	return root
}

func newTrainCmd() *cobra.Command {
	v := viper.New()
	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Fit the exponent on synthetic samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd.Flags())
			if err != nil {
				return err
			}
			util.InitLogger(cmd.OutOrStdout(), v.GetBool("verbose"))
			util.Debug(fmt.Sprintf("config: %+v", cfg))

			if path := v.GetString("history"); path != "" {
				closer, err := util.InitPlotLogger(path, "")
				if err != nil {
					return err
				}
				defer closer.Close()
			}
			return train(cmd.Context(), cfg)
		},
	}
	addConfigFlags(trainCmd.Flags())
	return trainCmd
}

func train(ctx context.Context, cfg ml.Config) error {
	res, err := ml.Run(ctx, cfg, func(iter int, loss, exp float64) {
		util.Logger.Printf("Iteration %d, loss = %v, exp = %v", iter, loss, exp)
		util.Plot(iter, loss, exp)
	})
	if err != nil {
		return err
	}
	util.Logger.Printf("Final exp = %v (target %v)", res.FinalExp, cfg.TargetExp)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "findexp:", err)
		os.Exit(1)
	}
}
