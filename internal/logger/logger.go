// Package logger provides a wrapper around logrus for structured logging.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a logger for the configured environment. A non-empty
// ENVIRONMENT variable takes precedence, so ENVIRONMENT=production selects
// the JSON formatter whatever the config says.
func NewLogger(logLevel, environment string, out io.Writer) *logrus.Logger {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		environment = env
	}
	return New(logLevel, environment, out)
}

// New creates a logger for the given level and environment. Results go to
// stdout, so log lines are kept on a separate writer.
func New(logLevel, environment string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to info", logLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Use JSON formatter for structured logging in production
	if environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
