package odds

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation errors. The calculator itself never returns them; they are for
// collaborators that check input before calling it.
var (
	ErrInvalidOdds        = errors.New("invalid odds")
	ErrInvalidProbability = errors.New("invalid probability")
	ErrInvalidStake       = errors.New("invalid stake")
)

type probabilityInput struct {
	Chance float64 `validate:"finite,gt=0,lte=1"`
}

type stakeInput struct {
	Stake float64 `validate:"finite,gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", validateFinite); err != nil {
		panic(err)
	}
	return v
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Validate reports whether o is inside the calculator's contract: decimal
// odds of at least 1, a non-negative fractional numerator over a positive
// denominator, or non-zero American odds. All payloads must be finite.
func Validate(o Odds) error {
	var target interface{}
	switch v := o.(type) {
	case Decimal:
		target = decimalInput{v.Value}
	case Fractional:
		target = fractionalInput{v.Numerator, v.Denominator}
	case American:
		target = americanInput{v.Value}
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidOdds, o)
	}
	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOdds, describe(o.Format().String(), err))
	}
	return nil
}

// ValidateProbability requires a chance in (0, 1].
func ValidateProbability(chance float64) error {
	if err := validate.Struct(probabilityInput{Chance: chance}); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProbability, describe("probability", err))
	}
	return nil
}

// ValidateStake requires a finite, non-negative stake.
func ValidateStake(stake float64) error {
	if err := validate.Struct(stakeInput{Stake: stake}); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStake, describe("stake", err))
	}
	return nil
}

type decimalInput struct {
	Value float64 `validate:"finite,gte=1"`
}

type fractionalInput struct {
	Numerator   float64 `validate:"finite,gte=0"`
	Denominator float64 `validate:"finite,gt=0"`
}

type americanInput struct {
	Value float64 `validate:"finite,ne=0"`
}

func describe(subject string, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s %s %v fails %s", subject, strings.ToLower(fe.Field()), fe.Value(), rule))
	}
	return strings.Join(parts, "; ")
}
