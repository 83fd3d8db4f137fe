// Package solver selects the subset of a catalog of investments that
// maximizes profit under a budget. It offers an exact dynamic-programming
// solver together with an exhaustive baseline and a greedy heuristic, all
// behind the same Solver contract.
package solver

import (
	"fmt"

	"github.com/iwvelando/investment-picker/pkg/constants"
	"github.com/iwvelando/investment-picker/pkg/mathutil"
)

// Solver picks a Selection from a Catalog under a budget.
type Solver interface {
	Name() string
	Solve(catalog Catalog, budget float64) (Selection, error)
}

// Options configures solver construction. Zero values pick the defaults
// from the constants package. A negative MaxExhaustiveItems removes the
// exhaustive catalog ceiling.
type Options struct {
	Observer           Observer
	MaxTableCells      int64
	MaxExhaustiveItems int
}

func (o Options) maxTableCells() int64 {
	if o.MaxTableCells <= 0 {
		return constants.DefaultMaxTableCells
	}
	return o.MaxTableCells
}

func (o Options) maxExhaustiveItems() int {
	if o.MaxExhaustiveItems == 0 {
		return constants.DefaultMaxExhaustiveItems
	}
	return o.MaxExhaustiveItems
}

// Strategies lists the strategy names accepted by New.
func Strategies() []string {
	return []string{constants.StrategyExhaustive, constants.StrategyGreedy, constants.StrategyDynamic}
}

// New constructs the solver registered under strategy.
func New(strategy string, opts Options) (Solver, error) {
	switch strategy {
	case constants.StrategyExhaustive:
		return NewExhaustive(opts), nil
	case constants.StrategyGreedy:
		return NewGreedy(opts), nil
	case constants.StrategyDynamic:
		return NewDynamic(opts), nil
	default:
		return nil, fmt.Errorf("unknown solver strategy %q", strategy)
	}
}

// validate checks the preconditions shared by every strategy.
func validate(catalog Catalog, budget float64) error {
	if !mathutil.IsFinite(budget) {
		return budgetError(budget, "must be finite")
	}
	if budget < 0 {
		return budgetError(budget, "must not be negative")
	}
	for i, item := range catalog {
		if !mathutil.IsFinite(item.Cost) {
			return itemError(i, item, "cost", item.Cost, "must be finite")
		}
		if item.Cost < 0 {
			return itemError(i, item, "cost", item.Cost, "must not be negative")
		}
		if !mathutil.IsFinite(item.ProfitPercentage) {
			return itemError(i, item, "profit percentage", item.ProfitPercentage, "must be finite")
		}
	}
	return nil
}
