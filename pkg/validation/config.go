package validation

import (
	"fmt"
	"math"

	"github.com/iwvelando/investment-picker/pkg/constants"
)

// exhaustiveWarnItems is the catalog size above which exhaustive search is
// likely to take minutes.
const exhaustiveWarnItems = 22

// ValidateBudget checks that a budget is a finite, non-negative amount.
func ValidateBudget(budget float64) error {
	if math.IsNaN(budget) || math.IsInf(budget, 0) {
		return fmt.Errorf("budget must be a finite number, got %v", budget)
	}
	if budget < 0 {
		return fmt.Errorf("budget must not be negative, got %.2f", budget)
	}
	return nil
}

// SolverWarnings returns advisory messages for a solver setup that is valid
// but likely to surprise the user.
func SolverWarnings(strategy string, budget float64, maxExhaustiveItems int) []string {
	var warnings []string

	usesDynamic := strategy == constants.StrategyDynamic || strategy == constants.StrategyAll
	usesExhaustive := strategy == constants.StrategyExhaustive || strategy == constants.StrategyAll
	usesGreedy := strategy == constants.StrategyGreedy || strategy == constants.StrategyAll

	if usesDynamic && budget != math.Trunc(budget) {
		warnings = append(warnings, fmt.Sprintf("budget %.2f is not a whole number and will be rejected by the %s solver",
			budget, constants.StrategyDynamic))
	}
	if usesExhaustive && maxExhaustiveItems < 0 {
		warnings = append(warnings, "exhaustive search has no catalog size limit, large catalogs may never finish")
	} else if usesExhaustive && maxExhaustiveItems > exhaustiveWarnItems {
		warnings = append(warnings, fmt.Sprintf("exhaustive search allows up to %d items (2^%d subsets), this may run for a long time",
			maxExhaustiveItems, maxExhaustiveItems))
	}
	if usesGreedy {
		warnings = append(warnings, "greedy strategy only accepts items while the total stays strictly below the budget")
	}

	return warnings
}
