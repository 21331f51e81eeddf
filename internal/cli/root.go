// Package cli implements the oddscalc command tree.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/oddscalc/internal/config"
	"github.com/yourusername/oddscalc/internal/logger"
	"github.com/yourusername/oddscalc/pkg/odds"
)

// app carries the state shared by every subcommand once the root
// PersistentPreRunE has run.
type app struct {
	configFile string
	output     string

	cfg        *config.Config
	log        *logrus.Logger
	calcLogger *logger.CalculationLogger
	calc       odds.OddsCalculator
}

// NewRootCommand builds the oddscalc command tree. calc is used for every
// calculation; pass nil for the default calculator.
func NewRootCommand(calc odds.OddsCalculator) *cobra.Command {
	if calc == nil {
		calc = odds.NewCalculator()
	}
	a := &app{calc: calc}

	rootCmd := &cobra.Command{
		Use:   "oddscalc",
		Short: "Convert betting odds and compute implied probability and returns",
		Long: `Converts betting odds between decimal, fractional and American notation,
computes implied probability and the expected return on a stake.

Odds are given as numbers through flags, for example:
  oddscalc probability --american -120
  oddscalc convert --numerator 5 --denominator 2 --to american
  oddscalc return --decimal 2.8 --stake 10`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", config.DefaultPath, "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Output format: text or json (overrides config)")

	rootCmd.AddCommand(
		newProbabilityCommand(a),
		newConvertCommand(a),
		newFromProbabilityCommand(a),
		newReturnCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	load := config.LoadWithDefaults
	if cmd.Flags().Changed("config") {
		load = config.Load
	}
	cfg, err := load(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.output != "" {
		cfg.Calculator.Output = a.output
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment, cmd.ErrOrStderr())
	a.calcLogger = logger.NewCalculationLogger(a.log)
	return nil
}
