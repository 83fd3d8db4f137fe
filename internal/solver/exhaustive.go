package solver

import "github.com/iwvelando/investment-picker/pkg/constants"

// Exhaustive evaluates every subset of the catalog. It is exact but
// exponential and serves as the correctness baseline.
type Exhaustive struct {
	observer Observer
	maxItems int
}

// NewExhaustive returns an exhaustive-search solver.
func NewExhaustive(opts Options) *Exhaustive {
	return &Exhaustive{observer: opts.Observer, maxItems: opts.maxExhaustiveItems()}
}

// Name implements Solver.
func (s *Exhaustive) Name() string {
	return constants.StrategyExhaustive
}

// Solve returns the first subset, by size then lexicographic index order,
// that reaches the highest profit with total cost <= budget.
func (s *Exhaustive) Solve(catalog Catalog, budget float64) (Selection, error) {
	return observe(s.observer, s.Name(), catalog, budget, func() (Selection, error) {
		return s.solve(catalog, budget)
	})
}

func (s *Exhaustive) solve(catalog Catalog, budget float64) (Selection, error) {
	if err := validate(catalog, budget); err != nil {
		return Selection{}, err
	}
	n := len(catalog)
	if s.maxItems >= 0 && n > s.maxItems {
		return Selection{}, &ResourceLimitError{Resource: "exhaustive catalog items", Requested: int64(n), Limit: int64(s.maxItems)}
	}

	best := newSelection(nil)
	candidate := make([]Item, 0, n)
	for size := 0; size <= n; size++ {
		combos := Combinations(n, size)
		for combos.Next() {
			candidate = candidate[:0]
			for _, idx := range combos.Indices() {
				candidate = append(candidate, catalog[idx])
			}
			cost, profit := EvaluateCombination(candidate)
			if cost <= budget && profit > best.TotalProfit {
				best = Selection{
					Items:       append([]Item(nil), candidate...),
					TotalProfit: profit,
					TotalCost:   cost,
				}
			}
		}
	}
	return best, nil
}
