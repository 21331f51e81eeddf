package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/yourusername/oddscalc/pkg/odds"
)

func newProbabilityCommand(a *app) *cobra.Command {
	var flags oddsFlags
	cmd := &cobra.Command{
		Use:   "probability",
		Short: "Implied probability of the given odds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calcLogger := a.calcLogger.Start("probability")

			o, err := flags.resolve(cmd)
			if err != nil {
				calcLogger.LogRejectedInput(err)
				return err
			}

			p := a.calc.Probability(o)
			calcLogger.LogProbability(o, p)

			return a.render(cmd, probabilityResult{Odds: newOddsView(o), Probability: jsonFloat(p)})
		},
	}
	flags.register(cmd)
	return cmd
}

func newConvertCommand(a *app) *cobra.Command {
	var (
		flags oddsFlags
		to    string
	)
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert odds to another notation",
		Long:  "Converts odds to decimal, fractional or American notation. Without --to all three are shown.\nFractional output always has a denominator of 1.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calcLogger := a.calcLogger.Start("convert")

			o, err := flags.resolve(cmd)
			if err != nil {
				calcLogger.LogRejectedInput(err)
				return err
			}

			formats := []odds.Format{odds.FormatDecimal, odds.FormatFractional, odds.FormatAmerican}
			if to != "" {
				f, err := odds.ParseFormat(to)
				if err != nil {
					calcLogger.LogRejectedInput(err)
					return err
				}
				formats = []odds.Format{f}
			}

			result := conversionResult{Input: newOddsView(o)}
			for _, f := range formats {
				converted := odds.Convert(o, f)
				calcLogger.LogConversion(o, converted)
				result.Converted = append(result.Converted, newOddsView(converted))
			}

			return a.render(cmd, result)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&to, "to", "", "Target notation: decimal, fractional or american")
	return cmd
}

func newFromProbabilityCommand(a *app) *cobra.Command {
	var chance float64
	cmd := &cobra.Command{
		Use:   "from-probability",
		Short: "Odds implied by a probability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calcLogger := a.calcLogger.Start("from-probability")

			if err := odds.ValidateProbability(chance); err != nil {
				calcLogger.LogRejectedInput(err)
				return err
			}

			d := a.calc.FromProbability(chance)
			calcLogger.LogOddsFromProbability(chance, d)

			return a.render(cmd, fromProbabilityResult{
				Chance: jsonFloat(chance),
				Odds: []oddsView{
					newOddsView(d),
					newOddsView(d.ToFractional()),
					newOddsView(d.ToAmerican()),
				},
			})
		},
	}
	cmd.Flags().Float64Var(&chance, "chance", 0, "Probability of the outcome in (0, 1]")
	_ = cmd.MarkFlagRequired("chance")
	return cmd
}

func newReturnCommand(a *app) *cobra.Command {
	var (
		flags oddsFlags
		stake float64
	)
	cmd := &cobra.Command{
		Use:   "return",
		Short: "Expected return and profit on a stake if the bet wins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calcLogger := a.calcLogger.Start("return")

			o, err := flags.resolve(cmd)
			if err != nil {
				calcLogger.LogRejectedInput(err)
				return err
			}

			if !cmd.Flags().Changed("stake") {
				stake = a.cfg.Calculator.DefaultStake
			}
			if err := odds.ValidateStake(stake); err != nil {
				calcLogger.LogRejectedInput(err)
				return err
			}

			ret := a.calc.ExpectedReturn(stake, o)
			profit := a.calc.Profit(stake, o)
			calcLogger.LogExpectedReturn(stake, o, ret, profit)

			exact, err := odds.ExpectedReturnExact(decimal.NewFromFloat(stake), o)
			if err != nil {
				return err
			}

			return a.render(cmd, returnResult{
				Stake:          jsonFloat(stake),
				Odds:           newOddsView(o),
				ExpectedReturn: jsonFloat(ret),
				Profit:         jsonFloat(profit),
				ExactReturn:    exact.String(),
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64Var(&stake, "stake", 0, "Stake amount (defaults to calculator.default_stake)")
	return cmd
}
