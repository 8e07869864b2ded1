// Package cli implements the stockpulse command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"StockPulse/internal/analysis"
	"StockPulse/internal/app"
	"StockPulse/internal/config"
	"StockPulse/internal/logger"
)

// ErrReported marks a failure whose error payload was already printed.
var ErrReported = errors.New("request failed")

// engineFactory builds the engine for one invocation and a cleanup func.
type engineFactory func(cmd *cobra.Command) (analysis.Engine, func(), error)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(buildEngine)
}

func newRootCmd(factory engineFactory) *cobra.Command {
	var (
		engine  analysis.Engine
		cleanup = func() {}
	)
	getEngine := func() analysis.Engine { return engine }

	rootCmd := &cobra.Command{
		Use:           "stockpulse",
		Short:         "StockPulse - technical analysis for US stocks and ETFs",
		Long:          `StockPulse computes technical indicators, momentum scores and volume analysis from daily price history and prints the result as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			e, c, err := factory(cmd)
			if err != nil {
				return err
			}
			engine, cleanup = e, c
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cleanup()
		},
	}

	rootCmd.AddCommand(newPriceCmd(getEngine))
	rootCmd.AddCommand(newIndicatorsCmd(getEngine))
	rootCmd.AddCommand(newMomentumCmd(getEngine))
	rootCmd.AddCommand(newVolumeCmd(getEngine))
	rootCmd.AddCommand(newListCmd(getEngine))
	rootCmd.AddCommand(newStatusCmd(getEngine))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().String("config", "", "Configuration file path (default $CONFIG_PATH or configs/config.yaml)")
	rootCmd.PersistentFlags().String("provider", "", "Override the data provider: tiingo, yahoo or mock")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	return rootCmd
}

func buildEngine(cmd *cobra.Command) (analysis.Engine, func(), error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.PathFromEnv()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.DataSource.Provider = strings.ToLower(p)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level := "warn"
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Log.Env); err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return a.Service, func() {
		_ = a.Close()
		_ = logger.Sync()
	}, nil
}

// writeResult writes the envelope and turns a failure into ErrReported.
func writeResult(cmd *cobra.Command, ticker string, v interface{}, err error) error {
	fmt.Fprintln(cmd.OutOrStdout(), string(analysis.EnvelopeJSON(ticker, v, err)))
	if err != nil {
		return ErrReported
	}
	return nil
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newPriceCmd(engine func() analysis.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "price TICKER",
		Short: "Latest daily price and 30 day range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := engine().Price(ctxOf(cmd), args[0])
			return writeResult(cmd, args[0], res, err)
		},
	}
}

func newIndicatorsCmd(engine func() analysis.Engine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indicators TICKER",
		Short: "Compute technical indicators",
		Long: `Compute technical indicators for a ticker.
Example: stockpulse indicators AAPL --indicators SMA,RSI,VWAP --period 90d`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, _ := cmd.Flags().GetStringSlice("indicators")
			period, _ := cmd.Flags().GetString("period")
			res, err := engine().Indicators(ctxOf(cmd), args[0], names, period)
			return writeResult(cmd, args[0], res, err)
		},
	}
	cmd.Flags().StringSlice("indicators", nil, "Indicator names (default SMA,EMA,RSI,MACD)")
	cmd.Flags().String("period", analysis.DefaultIndicatorPeriod, "Analysis period, e.g. 90d, 6m, 1y")
	return cmd
}

func newMomentumCmd(engine func() analysis.Engine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "momentum TICKER",
		Short: "Momentum score, rating and recommendation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, _ := cmd.Flags().GetString("period")
			res, err := engine().Momentum(ctxOf(cmd), args[0], period)
			return writeResult(cmd, args[0], res, err)
		},
	}
	cmd.Flags().String("period", analysis.DefaultMomentumPeriod, "Analysis period")
	return cmd
}

func newVolumeCmd(engine func() analysis.Engine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volume TICKER",
		Short: "Volume trend, VWAP and OBV analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, _ := cmd.Flags().GetString("period")
			res, err := engine().Volume(ctxOf(cmd), args[0], period)
			return writeResult(cmd, args[0], res, err)
		},
	}
	cmd.Flags().String("period", analysis.DefaultVolumePeriod, "Analysis period")
	return cmd
}

func newListCmd(engine func() analysis.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available indicators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeResult(cmd, "", engine().ListIndicators(), nil)
		},
	}
}

func newStatusCmd(engine func() analysis.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the market data provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := engine().Status(ctxOf(cmd))
			if err := writeResult(cmd, "", s, nil); err != nil {
				return err
			}
			if s.Status != "ok" {
				return ErrReported
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stockpulse %s\n", app.Version)
		},
	}
}
