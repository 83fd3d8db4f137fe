// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/investment-picker/internal/catalog"
	"github.com/iwvelando/investment-picker/internal/solver"
	"github.com/iwvelando/investment-picker/pkg/constants"
	"github.com/iwvelando/investment-picker/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. INVESTMENT_PICKER_SOLVER_BUDGET.
const EnvPrefix = "INVESTMENT_PICKER"

// Configuration holds all configuration for investment-picker.
type Configuration struct {
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Solver  SolverConfig  `yaml:"solver" mapstructure:"solver"`
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
	Output  OutputConfig  `yaml:"output,omitempty" mapstructure:"output"`
}

// InputConfig locates the stock sheet and describes its layout.
type InputConfig struct {
	File         string `yaml:"file" mapstructure:"file"`
	NameColumn   string `yaml:"nameColumn" mapstructure:"nameColumn"`
	CostColumn   string `yaml:"costColumn" mapstructure:"costColumn"`
	ProfitColumn string `yaml:"profitColumn" mapstructure:"profitColumn"`
	SkipInvalid  bool   `yaml:"skipInvalid,omitempty" mapstructure:"skipInvalid"`
}

// SolverConfig selects the strategy and its limits. Strategy is one of
// exhaustive, greedy, dynamic or all; Budget is an inclusive spending cap.
type SolverConfig struct {
	Strategy           string  `yaml:"strategy" mapstructure:"strategy"`
	Budget             float64 `yaml:"budget" mapstructure:"budget"`
	MaxTableCells      int64   `yaml:"maxTableCells,omitempty" mapstructure:"maxTableCells"`
	MaxExhaustiveItems int     `yaml:"maxExhaustiveItems,omitempty" mapstructure:"maxExhaustiveItems"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, yaml
}

func setDefaults(v *viper.Viper) {
	// Every key needs a default for AutomaticEnv to reach it through Unmarshal.
	v.SetDefault("input.file", "")
	v.SetDefault("input.nameColumn", constants.DefaultNameColumn)
	v.SetDefault("input.costColumn", constants.DefaultCostColumn)
	v.SetDefault("input.profitColumn", constants.DefaultProfitColumn)
	v.SetDefault("input.skipInvalid", false)
	v.SetDefault("solver.strategy", constants.DefaultStrategy)
	v.SetDefault("solver.budget", constants.DefaultBudget)
	v.SetDefault("solver.maxTableCells", constants.DefaultMaxTableCells)
	v.SetDefault("solver.maxExhaustiveItems", constants.DefaultMaxExhaustiveItems)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path yields the defaults, still subject to
// environment overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Validate returns an error for settings no run could succeed with.
func (c *Configuration) Validate() error {
	if err := validation.ValidateStrategy(c.Solver.Strategy); err != nil {
		return err
	}
	if err := validation.ValidateBudget(c.Solver.Budget); err != nil {
		return err
	}
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return err
	}
	if strings.TrimSpace(c.Input.File) == "" {
		return fmt.Errorf("no input file configured")
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	maxItems := c.Solver.MaxExhaustiveItems
	if maxItems == 0 {
		maxItems = constants.DefaultMaxExhaustiveItems
	}
	return validation.SolverWarnings(c.Solver.Strategy, c.Solver.Budget, maxItems)
}

// CatalogOptions returns the loader settings for the configured sheet.
func (c *Configuration) CatalogOptions() catalog.Options {
	return catalog.Options{
		Columns: catalog.Columns{
			Name:   c.Input.NameColumn,
			Cost:   c.Input.CostColumn,
			Profit: c.Input.ProfitColumn,
		},
		SkipInvalid: c.Input.SkipInvalid,
	}
}

// SolverOptions returns the solver limits with the given observer attached.
func (c *Configuration) SolverOptions(observer solver.Observer) solver.Options {
	return solver.Options{
		Observer:           observer,
		MaxTableCells:      c.Solver.MaxTableCells,
		MaxExhaustiveItems: c.Solver.MaxExhaustiveItems,
	}
}
