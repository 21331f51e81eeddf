package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yourusername/oddscalc/pkg/odds"
)

var (
	errNoOdds       = errors.New("one of --decimal, --numerator or --american is required")
	errMultipleOdds = errors.New("only one of --decimal, --numerator or --american may be given")
)

// oddsFlags holds one odds value given as numeric flags.
type oddsFlags struct {
	decimal     float64
	numerator   float64
	denominator float64
	american    float64
}

func (f *oddsFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.decimal, "decimal", 0, "Decimal odds, e.g. 2.8")
	cmd.Flags().Float64Var(&f.numerator, "numerator", 0, "Fractional odds numerator (profit), e.g. 5 for 5/2")
	cmd.Flags().Float64Var(&f.denominator, "denominator", 1, "Fractional odds denominator (stake), e.g. 2 for 5/2")
	cmd.Flags().Float64Var(&f.american, "american", 0, "American odds, e.g. -120 or 180")
}

// resolve returns the single odds value set on cmd and validates it.
func (f *oddsFlags) resolve(cmd *cobra.Command) (odds.Odds, error) {
	var set []odds.Odds
	if cmd.Flags().Changed("decimal") {
		set = append(set, odds.Decimal{Value: f.decimal})
	}
	if cmd.Flags().Changed("numerator") || cmd.Flags().Changed("denominator") {
		set = append(set, odds.Fractional{Numerator: f.numerator, Denominator: f.denominator})
	}
	if cmd.Flags().Changed("american") {
		set = append(set, odds.American{Value: f.american})
	}

	switch len(set) {
	case 0:
		return nil, errNoOdds
	case 1:
	default:
		return nil, errMultipleOdds
	}

	if err := odds.Validate(set[0]); err != nil {
		return nil, err
	}
	return set[0], nil
}
