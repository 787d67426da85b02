// Package constants provides shared constants for the mortgage-forecast application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100

	// CurrencyPlaces is the number of fractional digits in a currency amount
	CurrencyPlaces int32 = 2

	// WorkingPrecision is the number of fractional digits carried by every
	// division, power and logarithm in the amortization engine.
	WorkingPrecision int32 = 28

	// MaxLoanYears bounds the term and elapsed years accepted by the
	// closed-form loan calculations.
	MaxLoanYears int64 = 1_000_000

	// MaxProjectionYears bounds anything enumerated year by year or month by
	// month: forecast horizons and schedule terms.
	MaxProjectionYears int64 = 1_000
)

// Date constants
const (
	// DateTimeLayout is the month format used for scenario start dates and
	// payment dates.
	DateTimeLayout = "2006-01"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// DefaultCurrencySymbol prefixes formatted amounts when no symbol is configured
	DefaultCurrencySymbol = "£"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
