// Package constants provides shared constants for the investment-picker application.
package constants

// Solver strategy names.
const (
	// StrategyExhaustive enumerates every subset of the catalog.
	StrategyExhaustive = "exhaustive"

	// StrategyGreedy accepts items by descending profit percentage.
	StrategyGreedy = "greedy"

	// StrategyDynamic is the exact dynamic-programming solver.
	StrategyDynamic = "dynamic"

	// StrategyAll runs every strategy on the same catalog for comparison.
	StrategyAll = "all"
)

// Solver defaults
const (
	// DefaultBudget is the spending cap used when none is configured.
	DefaultBudget = 500.0

	// DefaultStrategy is the strategy used when none is configured.
	DefaultStrategy = StrategyDynamic

	// DefaultMaxTableCells bounds the dynamic-programming table size.
	DefaultMaxTableCells = 20_000_000

	// DefaultMaxExhaustiveItems bounds the catalog size accepted by exhaustive search.
	DefaultMaxExhaustiveItems = 25
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencySymbol is appended to amounts in human-readable output.
	CurrencySymbol = "€"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Catalog column defaults, matching the headers of the reference stock sheets.
const (
	DefaultNameColumn   = "Actions #"
	DefaultCostColumn   = "Coût par action (en euros)"
	DefaultProfitColumn = "Bénéfice (après 2 ans)"
)
