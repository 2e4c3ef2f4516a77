// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/format"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
	"github.com/iwvelando/mortgage-calc/pkg/mortgage"
	"github.com/iwvelando/mortgage-calc/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-calc.
type Configuration struct {
	Calculator CalculatorConfig `yaml:"calculator,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// CalculatorConfig holds the values a fresh calculator starts from.
type CalculatorConfig struct {
	CurrencySign       string  `yaml:"currencySign,omitempty"`
	SignPosition       string  `yaml:"signPosition,omitempty"` // before, after
	Term               int     `yaml:"term,omitempty"`         // years
	Interest           float64 `yaml:"interest,omitempty"`     // annual percent
	Price              float64 `yaml:"price,omitempty"`
	DownpaymentPercent float64 `yaml:"downpaymentPercent,omitempty"`
	Tax                float64 `yaml:"tax,omitempty"` // monthly
	HOA                float64 `yaml:"hoa,omitempty"` // monthly
	Insurance          float64 `yaml:"insurance,omitempty"`
	SliderStep         float64 `yaml:"sliderStep,omitempty"` // terminal slider increment
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys missing from the file take their defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("MORTGAGE_CALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	v := viper.New()
	setDefaults(v)

	var configuration Configuration
	// Defaults alone always decode.
	_ = v.Unmarshal(&configuration)
	return &configuration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calculator.currencySign", constants.DefaultCurrencySign)
	v.SetDefault("calculator.signPosition", constants.SignPositionBefore)
	v.SetDefault("calculator.term", constants.DefaultTerm)
	v.SetDefault("calculator.interest", constants.DefaultInterest)
	v.SetDefault("calculator.price", constants.DefaultPrice)
	v.SetDefault("calculator.downpaymentPercent", constants.DefaultDownpaymentPercent)
	v.SetDefault("calculator.tax", 0)
	v.SetDefault("calculator.hoa", 0)
	v.SetDefault("calculator.insurance", 0)
	v.SetDefault("calculator.sliderStep", constants.DefaultSliderStep)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("output.format", constants.OutputFormatPretty)
}

// Values converts the configured defaults into calculator inputs. The
// downpayment amount is derived from the percentage, rounded to whole units.
func (c CalculatorConfig) Values() mortgage.Values {
	return mortgage.Values{
		Term:               c.Term,
		Interest:           c.Interest,
		Price:              c.Price,
		Downpayment:        mathutil.RoundHalfUp(mathutil.ApplyPercentage(c.Price, c.DownpaymentPercent)),
		DownpaymentPercent: c.DownpaymentPercent,
		Tax:                c.Tax,
		HOA:                c.HOA,
		Insurance:          c.Insurance,
		CurrencySign:       c.CurrencySign,
		SignPosition:       format.ParseSignPosition(c.SignPosition),
	}.WithDefaults()
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	calc := c.Calculator
	defaults := validation.CalculatorDefaults{
		Term:               calc.Term,
		DownpaymentPercent: calc.DownpaymentPercent,
		SliderStep:         calc.SliderStep,
		SignPosition:       calc.SignPosition,
	}
	warnings = append(warnings, defaults.ValidateAll()...)

	if err := calc.Values().Validate(); err != nil {
		warnings = append(warnings, fmt.Sprintf("Calculator defaults: %v", err))
	}

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	return warnings
}
