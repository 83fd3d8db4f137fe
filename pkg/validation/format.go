// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/investment-picker/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatYAML:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatYAML, format)
}

// ValidateStrategy checks if the strategy names a solver or the comparison mode.
func ValidateStrategy(strategy string) error {
	switch strategy {
	case constants.StrategyExhaustive, constants.StrategyGreedy, constants.StrategyDynamic, constants.StrategyAll:
		return nil
	}
	return fmt.Errorf("expected strategy of %s, %s, %s or %s, got %s",
		constants.StrategyExhaustive, constants.StrategyGreedy, constants.StrategyDynamic, constants.StrategyAll, strategy)
}
