// Package odds converts betting odds between decimal, fractional and American
// notation and computes implied probability and expected return.
//
// Every function in this package is pure and safe for concurrent use. Inputs
// are not guarded: out-of-domain values (probability 0, American odds 0, a
// zero fractional denominator) propagate IEEE-754 results such as +Inf or NaN.
// Callers that accept untrusted input should run Validate first.
package odds

import (
	"fmt"
	"math"
	"strings"
)

// Format identifies an odds notation.
type Format int

const (
	FormatDecimal Format = iota
	FormatFractional
	FormatAmerican
)

// String returns the lower-case notation name.
func (f Format) String() string {
	switch f {
	case FormatDecimal:
		return "decimal"
	case FormatFractional:
		return "fractional"
	case FormatAmerican:
		return "american"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps a notation name to its Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "decimal", "european":
		return FormatDecimal, nil
	case "fractional", "uk":
		return FormatFractional, nil
	case "american", "moneyline", "us":
		return FormatAmerican, nil
	default:
		return 0, fmt.Errorf("unknown odds format %q", name)
	}
}

// Odds is one of Decimal, Fractional or American. Values are compared
// structurally: Decimal{2} and Fractional{1, 1} imply the same probability
// but are not equal.
type Odds interface {
	Format() Format
	Probability() float64
	ToDecimal() Decimal
	ToFractional() Fractional
	ToAmerican() American
	String() string

	sealed()
}

// Decimal odds are the total payout per unit stake. 1.0 is a certain outcome.
type Decimal struct {
	Value float64 `json:"value"`
}

// Fractional odds are the net profit Numerator won for every Denominator staked.
type Fractional struct {
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
}

// American odds are negative for favourites (stake needed to win 100) and
// positive for underdogs (profit on a stake of 100).
type American struct {
	Value float64 `json:"value"`
}

func (Decimal) sealed()    {}
func (Fractional) sealed() {}
func (American) sealed()   {}

func (Decimal) Format() Format    { return FormatDecimal }
func (Fractional) Format() Format { return FormatFractional }
func (American) Format() Format   { return FormatAmerican }

func (d Decimal) Probability() float64    { return Probability(d) }
func (f Fractional) Probability() float64 { return Probability(f) }
func (a American) Probability() float64   { return Probability(a) }

func (d Decimal) ToDecimal() Decimal    { return decimalFromProbability(Probability(d)) }
func (f Fractional) ToDecimal() Decimal { return decimalFromProbability(Probability(f)) }
func (a American) ToDecimal() Decimal   { return decimalFromProbability(Probability(a)) }

func (d Decimal) ToFractional() Fractional    { return fractionalFromProbability(Probability(d)) }
func (f Fractional) ToFractional() Fractional { return fractionalFromProbability(Probability(f)) }
func (a American) ToFractional() Fractional   { return fractionalFromProbability(Probability(a)) }

func (d Decimal) ToAmerican() American    { return americanFromProbability(Probability(d)) }
func (f Fractional) ToAmerican() American { return americanFromProbability(Probability(f)) }
func (a American) ToAmerican() American   { return americanFromProbability(Probability(a)) }

func (d Decimal) String() string {
	return fmt.Sprintf("%g", d.Value)
}

func (f Fractional) String() string {
	return fmt.Sprintf("%g/%g", f.Numerator, f.Denominator)
}

func (a American) String() string {
	if a.Value > 0 {
		return fmt.Sprintf("+%g", a.Value)
	}
	return fmt.Sprintf("%g", a.Value)
}

// Convert returns o expressed in the target notation. An unknown format
// returns o unchanged.
func Convert(o Odds, to Format) Odds {
	switch to {
	case FormatDecimal:
		return o.ToDecimal()
	case FormatFractional:
		return o.ToFractional()
	case FormatAmerican:
		return o.ToAmerican()
	default:
		return o
	}
}

func decimalFromProbability(p float64) Decimal {
	return Decimal{Value: 1 / p}
}

// The denominator is always 1. Reducing the profit ratio to small integers
// (6/4 -> 3/2, 0.8333 -> 5/6) is not done.
func fractionalFromProbability(p float64) Fractional {
	return Fractional{Numerator: 1/p - 1, Denominator: 1}
}

// p == 0.5 takes the underdog branch and yields +100, never -100.
func americanFromProbability(p float64) American {
	if p > 0.5 {
		return American{Value: -math.Round(p / (1 - p) * 100)}
	}
	return American{Value: math.Round((1 - p) / p * 100)}
}
