package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yourusername/oddscalc/pkg/odds"
)

// textWriter is implemented by every result so it can be printed for humans.
type textWriter interface {
	writeText(w io.Writer, precision int) error
}

// oddsView is the rendered form of an odds value. Only the payload fields of
// the value's own notation are set.
type oddsView struct {
	src         odds.Odds
	Format      string   `json:"format"`
	Value       *jsonFloat `json:"value,omitempty"`
	Numerator   *jsonFloat `json:"numerator,omitempty"`
	Denominator *jsonFloat `json:"denominator,omitempty"`
}

// jsonFloat encodes Inf and NaN as strings ("+Inf", "-Inf", "NaN"), which
// encoding/json otherwise refuses. Certain outcomes reach -Inf in American
// notation, so in-range input can produce them.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return json.Marshal(v)
}

func ptr(f float64) *jsonFloat {
	v := jsonFloat(f)
	return &v
}

func newOddsView(o odds.Odds) oddsView {
	v := oddsView{src: o, Format: o.Format().String()}
	switch x := o.(type) {
	case odds.Decimal:
		v.Value = ptr(x.Value)
	case odds.Fractional:
		v.Numerator = ptr(x.Numerator)
		v.Denominator = ptr(x.Denominator)
	case odds.American:
		v.Value = ptr(x.Value)
	}
	return v
}

// display formats the odds in their conventional notation.
func (v oddsView) display(precision int) string {
	switch x := v.src.(type) {
	case odds.Decimal:
		return formatFloat(x.Value, precision)
	case odds.Fractional:
		return formatFloat(x.Numerator, precision) + "/" + strconv.FormatFloat(x.Denominator, 'g', -1, 64)
	case odds.American:
		s := formatFloat(x.Value, 0)
		if x.Value > 0 {
			s = "+" + s
		}
		return s
	default:
		return ""
	}
}

type probabilityResult struct {
	Odds        oddsView  `json:"odds"`
	Probability jsonFloat `json:"probability"`
}

func (r probabilityResult) writeText(w io.Writer, precision int) error {
	_, err := fmt.Fprintf(w, "%s odds %s: implied probability %s\n",
		r.Odds.Format, r.Odds.display(precision), formatFloat(float64(r.Probability), precision))
	return err
}

type conversionResult struct {
	Input     oddsView   `json:"input"`
	Converted []oddsView `json:"converted"`
}

func (r conversionResult) writeText(w io.Writer, precision int) error {
	if _, err := fmt.Fprintf(w, "%s odds %s\n", r.Input.Format, r.Input.display(precision)); err != nil {
		return err
	}
	for _, c := range r.Converted {
		if _, err := fmt.Fprintf(w, "  %-10s %s\n", c.Format, c.display(precision)); err != nil {
			return err
		}
	}
	return nil
}

type fromProbabilityResult struct {
	Chance jsonFloat  `json:"chance"`
	Odds   []oddsView `json:"odds"`
}

func (r fromProbabilityResult) writeText(w io.Writer, precision int) error {
	if _, err := fmt.Fprintf(w, "probability %s\n", formatFloat(float64(r.Chance), precision)); err != nil {
		return err
	}
	for _, o := range r.Odds {
		if _, err := fmt.Fprintf(w, "  %-10s %s\n", o.Format, o.display(precision)); err != nil {
			return err
		}
	}
	return nil
}

type returnResult struct {
	Stake          jsonFloat `json:"stake"`
	Odds           oddsView  `json:"odds"`
	ExpectedReturn jsonFloat `json:"expected_return"`
	Profit         jsonFloat `json:"profit"`
	ExactReturn    string    `json:"exact_return"`
}

func (r returnResult) writeText(w io.Writer, precision int) error {
	_, err := fmt.Fprintf(w, "stake %s at %s odds %s: return %s, profit %s\n",
		formatFloat(float64(r.Stake), precision), r.Odds.Format, r.Odds.display(precision),
		formatFloat(float64(r.ExpectedReturn), precision), formatFloat(float64(r.Profit), precision))
	return err
}

func (a *app) render(cmd *cobra.Command, result textWriter) error {
	out := cmd.OutOrStdout()
	if a.cfg.JSONOutput() {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}
	return result.writeText(out, a.cfg.Calculator.Precision)
}

// formatFloat keeps strconv's spelling of infinities so that results at the
// edge of the odds domain stay readable.
func formatFloat(f float64, precision int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}
