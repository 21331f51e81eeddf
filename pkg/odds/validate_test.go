package odds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		odds    Odds
		wantErr bool
	}{
		{"decimal", Decimal{2.5}, false},
		{"decimal certain", Decimal{1}, false},
		{"decimal below one", Decimal{0.5}, true},
		{"decimal zero", Decimal{0}, true},
		{"decimal infinite", Decimal{math.Inf(1)}, true},
		{"decimal nan", Decimal{math.NaN()}, true},
		{"fractional", Fractional{5, 2}, false},
		{"fractional zero profit", Fractional{0, 1}, false},
		{"fractional negative numerator", Fractional{-1, 2}, true},
		{"fractional zero denominator", Fractional{1, 0}, true},
		{"fractional negative denominator", Fractional{1, -2}, true},
		{"american favourite", American{-120}, false},
		{"american underdog", American{180}, false},
		{"american zero", American{0}, true},
		{"american infinite", American{math.Inf(-1)}, true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.odds)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOdds)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateMessageNamesField(t *testing.T) {
	err := Validate(Fractional{1, 0})
	assert.ErrorContains(t, err, "fractional denominator")
	assert.ErrorContains(t, err, "gt=0")
}

func TestValidateProbability(t *testing.T) {
	for _, p := range []float64{0.01, 0.5, 1} {
		assert.NoError(t, ValidateProbability(p), "chance %v", p)
	}
	for _, p := range []float64{0, -0.2, 1.0001, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, ValidateProbability(p), ErrInvalidProbability, "chance %v", p)
	}
}

func TestValidateStake(t *testing.T) {
	assert.NoError(t, ValidateStake(0))
	assert.NoError(t, ValidateStake(13.75))
	assert.ErrorIs(t, ValidateStake(-1), ErrInvalidStake)
	assert.ErrorIs(t, ValidateStake(math.NaN()), ErrInvalidStake)
}
