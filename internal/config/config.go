// Package config provides configuration management for the oddscalc command.
package config

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Calculator CalculatorConfig `mapstructure:"calculator" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// CalculatorConfig controls how calculations are presented
type CalculatorConfig struct {
	DefaultStake float64 `mapstructure:"default_stake" validate:"gte=0"`
	Output       string  `mapstructure:"output" validate:"required,oneof=text json"`
	Precision    int     `mapstructure:"precision" validate:"gte=0,lte=12"`
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// JSONOutput reports whether results should be written as JSON
func (c *Config) JSONOutput() bool {
	return c.Calculator.Output == "json"
}
