package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	got := American{-120}.ToDecimal()
	assert.InDelta(t, 1.8333333, got.Value, tolerance)

	assert.InDelta(t, 3.5, Fractional{5, 2}.ToDecimal().Value, tolerance)
	assert.InDelta(t, 2.8, American{180}.ToDecimal().Value, tolerance)
	assert.InDelta(t, 1.65, Decimal{1.65}.ToDecimal().Value, tolerance)
}

func TestToAmerican(t *testing.T) {
	tests := []struct {
		name string
		odds Odds
		want American
	}{
		{"decimal underdog", Decimal{2.8}, American{180}},
		{"decimal favourite", Decimal{1.5}, American{-200}},
		{"fractional underdog", Fractional{5, 2}, American{250}},
		{"fractional favourite", Fractional{1, 4}, American{-400}},
		{"american identity", American{-120}, American{-120}},
		{"rounded to whole", Decimal{1.91}, American{-110}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.odds.ToAmerican())
		})
	}
}

func TestToAmericanEvenMoneyIsPositive(t *testing.T) {
	for _, o := range []Odds{Decimal{2}, Fractional{1, 1}, Fractional{3, 3}, American{100}, American{-100}} {
		assert.Equal(t, American{100}, o.ToAmerican(), "%s", o)
	}
}

func TestToAmericanSign(t *testing.T) {
	for i := 1; i < 100; i++ {
		p := float64(i) / 100
		got := FromProbability(p).ToAmerican()
		if p > 0.5 {
			assert.Negative(t, got.Value, "chance %v", p)
		} else {
			assert.GreaterOrEqual(t, got.Value, 0.0, "chance %v", p)
		}
	}
}

func TestToFractional(t *testing.T) {
	got := Decimal{2.5}.ToFractional()
	assert.InDelta(t, 1.5, got.Numerator, tolerance)
	assert.Equal(t, 1.0, got.Denominator)

	got = American{-200}.ToFractional()
	assert.InDelta(t, 0.5, got.Numerator, tolerance)
	assert.Equal(t, 1.0, got.Denominator)
}

func TestToFractionalIsNotReduced(t *testing.T) {
	got := Fractional{6, 4}.ToFractional()
	assert.NotEqual(t, Fractional{3, 2}, got)
	assert.InDelta(t, 1.5, got.Numerator, tolerance)
	assert.Equal(t, 1.0, got.Denominator)
}

func TestConversionsPreserveProbability(t *testing.T) {
	values := []Odds{
		Decimal{1.01}, Decimal{1.65}, Decimal{2}, Decimal{2.8}, Decimal{34},
		Fractional{5, 2}, Fractional{1, 4}, Fractional{100, 30}, Fractional{0, 1},
		American{-120}, American{180}, American{-1000}, American{100},
	}

	for _, o := range values {
		want := Probability(o)
		assert.InEpsilon(t, want, Probability(o.ToDecimal()), tolerance, "%s to decimal", o)
		assert.InEpsilon(t, want, Probability(o.ToFractional()), tolerance, "%s to fractional", o)
	}
}

func TestAmericanConversionPreservesProbability(t *testing.T) {
	// American payloads are rounded to whole numbers, so compare on
	// values that already sit on the whole-number grid.
	for _, o := range []Odds{Decimal{2.8}, Decimal{1.5}, Fractional{5, 2}, Fractional{1, 4}, American{-120}, American{180}} {
		assert.InEpsilon(t, Probability(o), Probability(o.ToAmerican()), tolerance, "%s", o)
	}
}

func TestCertainOutcome(t *testing.T) {
	o := Decimal{1}
	assert.Equal(t, Decimal{1}, o.ToDecimal())
	assert.Equal(t, Fractional{0, 1}, o.ToFractional())
	assert.True(t, o.ToAmerican().Value < 0)
}

func TestStructuralEquality(t *testing.T) {
	a, b := Decimal{2}, FromProbability(0.5)
	assert.True(t, a == b)
	assert.NotEqual(t, Odds(Decimal{2}), Odds(Fractional{1, 1}))
	assert.InDelta(t, Probability(Decimal{2}), Probability(Fractional{1, 1}), tolerance)
}

func TestConvert(t *testing.T) {
	o := Fractional{5, 2}
	assert.Equal(t, o.ToDecimal(), Convert(o, FormatDecimal))
	assert.Equal(t, o.ToFractional(), Convert(o, FormatFractional))
	assert.Equal(t, o.ToAmerican(), Convert(o, FormatAmerican))
	assert.Equal(t, Odds(o), Convert(o, Format(42)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, FormatDecimal, Decimal{2}.Format())
	assert.Equal(t, FormatFractional, Fractional{1, 1}.Format())
	assert.Equal(t, FormatAmerican, American{100}.Format())
	assert.Equal(t, "format(9)", Format(9).String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"decimal", FormatDecimal},
		{"Decimal", FormatDecimal},
		{"european", FormatDecimal},
		{" fractional ", FormatFractional},
		{"uk", FormatFractional},
		{"american", FormatAmerican},
		{"moneyline", FormatAmerican},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("asian")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "2.5", Decimal{2.5}.String())
	assert.Equal(t, "5/2", Fractional{5, 2}.String())
	assert.Equal(t, "+150", American{150}.String())
	assert.Equal(t, "-120", American{-120}.String())
}
