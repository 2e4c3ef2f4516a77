// Package constants provides shared constants for the mortgage-calc application.
package constants

import "time"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// MonthlyRateDivisor converts an annual percentage into a monthly rate
	// (12 months * 100 percent).
	MonthlyRateDivisor = MonthsPerYear * PercentageMultiplier

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// MaxFractionDigits mirrors the en-US number grouping used by the page
	// template: at most three fraction digits are shown.
	MaxFractionDigits = 3
)

// Display constants
const (
	// DefaultCurrencySign is used when the page does not declare one.
	DefaultCurrencySign = "$"

	// SignPositionBefore places the currency sign ahead of the amount.
	SignPositionBefore = "before"

	// SignPositionAfter places the currency sign behind the amount.
	SignPositionAfter = "after"

	// PercentSuffix is appended to percentage text fields.
	PercentSuffix = "%"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Calculator defaults applied when the configuration leaves a value unset.
const (
	DefaultTerm               = 30
	DefaultInterest           = 4.5
	DefaultPrice              = 300000.0
	DefaultDownpaymentPercent = 20.0
	DefaultSliderStep         = 1.0
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request body size for rendered pages (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultReadTimeout bounds reading a request
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout bounds writing a response
	DefaultWriteTimeout = 30 * time.Second
)
