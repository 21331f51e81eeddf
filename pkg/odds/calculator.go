package odds

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// OddsCalculator is the calculation surface used by collaborators that want
// to inject or stub the maths.
type OddsCalculator interface {
	FromProbability(chance float64) Decimal
	Probability(o Odds) float64
	ExpectedReturn(stake float64, o Odds) float64
	Profit(stake float64, o Odds) float64
}

// Calculator implements OddsCalculator with the package-level functions.
// It holds no state; the zero value is ready to use.
type Calculator struct{}

var _ OddsCalculator = Calculator{}

// NewCalculator returns a Calculator.
func NewCalculator() Calculator {
	return Calculator{}
}

func (Calculator) FromProbability(chance float64) Decimal { return FromProbability(chance) }

func (Calculator) Probability(o Odds) float64 { return Probability(o) }

func (Calculator) ExpectedReturn(stake float64, o Odds) float64 { return ExpectedReturn(stake, o) }

func (Calculator) Profit(stake float64, o Odds) float64 { return Profit(stake, o) }

// FromProbability returns the decimal odds for an outcome with the given
// chance. A chance of 0 yields +Inf.
func FromProbability(chance float64) Decimal {
	return Decimal{Value: 1 / chance}
}

// Probability returns the implied probability of o.
//
// Fractional odds treat the numerator as profit and the denominator as stake,
// so 5/2 implies 2/7. American odds of 0 are not real odds; they fall through
// to the underdog formula and report 1.
func Probability(o Odds) float64 {
	switch v := o.(type) {
	case Decimal:
		return 1 / v.Value
	case Fractional:
		return v.Denominator / (v.Denominator + v.Numerator)
	case American:
		if v.Value < 0 {
			abs := math.Abs(v.Value)
			return abs / (abs + 100)
		}
		return 100 / (v.Value + 100)
	default:
		return math.NaN()
	}
}

// ExpectedReturn is the total payout (stake plus profit) if the bet wins.
// American odds of 0 take the favourite branch and divide by zero, giving
// -Inf for a positive stake.
func ExpectedReturn(stake float64, o Odds) float64 {
	switch v := o.(type) {
	case Decimal:
		return stake * v.Value
	case Fractional:
		return stake + stake*v.Numerator/v.Denominator
	case American:
		if v.Value > 0 {
			return stake + v.Value*(stake/100)
		}
		return stake - (100/v.Value)*stake
	default:
		return math.NaN()
	}
}

// Profit is the net amount won on top of the stake.
func Profit(stake float64, o Odds) float64 {
	return ExpectedReturn(stake, o) - stake
}

var hundred = decimal.NewFromInt(100)

// ExpectedReturnExact computes ExpectedReturn in decimal arithmetic for money
// amounts. Unlike the float path it cannot carry Inf or NaN, so payloads that
// would produce them are reported as ErrInvalidOdds.
func ExpectedReturnExact(stake decimal.Decimal, o Odds) (decimal.Decimal, error) {
	switch v := o.(type) {
	case Decimal:
		if !finite(v.Value) {
			return decimal.Zero, fmt.Errorf("%w: decimal value %v", ErrInvalidOdds, v.Value)
		}
		return stake.Mul(decimal.NewFromFloat(v.Value)), nil
	case Fractional:
		if !finite(v.Numerator) || !finite(v.Denominator) || v.Denominator == 0 {
			return decimal.Zero, fmt.Errorf("%w: fractional %s", ErrInvalidOdds, v)
		}
		n := decimal.NewFromFloat(v.Numerator)
		d := decimal.NewFromFloat(v.Denominator)
		return stake.Add(stake.Mul(n).Div(d)), nil
	case American:
		if !finite(v.Value) || v.Value == 0 {
			return decimal.Zero, fmt.Errorf("%w: american value %v", ErrInvalidOdds, v.Value)
		}
		a := decimal.NewFromFloat(v.Value)
		if a.IsPositive() {
			return stake.Add(a.Mul(stake.Div(hundred))), nil
		}
		return stake.Add(stake.Mul(hundred).Div(a.Abs())), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrInvalidOdds, o)
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
