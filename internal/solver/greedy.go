package solver

import (
	"sort"

	"github.com/iwvelando/investment-picker/pkg/constants"
)

// Greedy takes items by descending profit percentage while the running
// cost stays strictly below the budget. It is a heuristic and may miss the
// optimum.
type Greedy struct {
	observer Observer
}

// NewGreedy returns a greedy solver.
func NewGreedy(opts Options) *Greedy {
	return &Greedy{observer: opts.Observer}
}

// Name implements Solver.
func (s *Greedy) Name() string {
	return constants.StrategyGreedy
}

// Solve implements Solver. An item that would bring the total exactly to
// the budget is rejected.
func (s *Greedy) Solve(catalog Catalog, budget float64) (Selection, error) {
	return observe(s.observer, s.Name(), catalog, budget, func() (Selection, error) {
		return s.solve(catalog, budget)
	})
}

func (s *Greedy) solve(catalog Catalog, budget float64) (Selection, error) {
	if err := validate(catalog, budget); err != nil {
		return Selection{}, err
	}

	order := make([]int, len(catalog))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return catalog[order[a]].ProfitPercentage > catalog[order[b]].ProfitPercentage
	})

	var chosen []int
	running := 0.0
	for _, idx := range order {
		cost := catalog[idx].Cost
		if running+cost < budget {
			running += cost
			chosen = append(chosen, idx)
		}
	}

	sort.Ints(chosen)
	items := make([]Item, 0, len(chosen))
	for _, idx := range chosen {
		items = append(items, catalog[idx])
	}
	return newSelection(items), nil
}
