package logger

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/oddscalc/pkg/odds"
)

// CalculationLogger records calculator invocations.
type CalculationLogger struct {
	*logrus.Entry
}

// NewCalculationLogger creates a new calculation logger.
func NewCalculationLogger(baseLogger *logrus.Logger) *CalculationLogger {
	return &CalculationLogger{
		Entry: baseLogger.WithField("component", "calculator"),
	}
}

// Start returns an entry tagged with a fresh calculation_id so that every
// line of one calculation can be correlated.
func (cl *CalculationLogger) Start(operation string) *CalculationLogger {
	return &CalculationLogger{
		Entry: cl.WithFields(logrus.Fields{
			"calculation_id": uuid.NewString(),
			"operation":      operation,
		}),
	}
}

// LogConversion logs an odds conversion.
func (cl *CalculationLogger) LogConversion(in, out odds.Odds) {
	cl.WithFields(logrus.Fields{
		"input_format":  in.Format().String(),
		"input_odds":    in.String(),
		"output_format": out.Format().String(),
		"output_odds":   out.String(),
	}).Debug("Odds converted")
}

// LogProbability logs an implied probability lookup.
func (cl *CalculationLogger) LogProbability(in odds.Odds, probability float64) {
	cl.WithFields(logrus.Fields{
		"input_format": in.Format().String(),
		"input_odds":   in.String(),
		"probability":  probability,
	}).Debug("Implied probability computed")
}

// LogOddsFromProbability logs odds derived from a chance.
func (cl *CalculationLogger) LogOddsFromProbability(chance float64, out odds.Odds) {
	cl.WithFields(logrus.Fields{
		"chance":      chance,
		"output_odds": out.String(),
	}).Debug("Odds derived from probability")
}

// LogExpectedReturn logs a payout calculation.
func (cl *CalculationLogger) LogExpectedReturn(stake float64, in odds.Odds, expectedReturn, profit float64) {
	cl.WithFields(logrus.Fields{
		"stake":           stake,
		"input_format":    in.Format().String(),
		"input_odds":      in.String(),
		"expected_return": expectedReturn,
		"profit":          profit,
	}).Debug("Expected return computed")
}

// LogRejectedInput logs input that failed validation.
func (cl *CalculationLogger) LogRejectedInput(err error) {
	cl.WithError(err).Warn("Calculation input rejected")
}
