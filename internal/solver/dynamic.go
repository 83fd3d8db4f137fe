package solver

import (
	"math"

	"github.com/iwvelando/investment-picker/pkg/constants"
	"github.com/iwvelando/investment-picker/pkg/mathutil"
)

// Dynamic is the exact 0/1 knapsack solver. It fills a table of
// (catalog prefix, budget level) cells holding the best reachable profit and
// a flag recording whether the prefix's last item was taken, then walks the
// flags back from the full budget to recover the chosen items.
//
// Costs and budget must be whole numbers. Time and memory are
// O(len(catalog) * budget).
type Dynamic struct {
	observer Observer
	maxCells int64
}

// NewDynamic returns a dynamic-programming solver.
func NewDynamic(opts Options) *Dynamic {
	return &Dynamic{observer: opts.Observer, maxCells: opts.maxTableCells()}
}

// Name implements Solver.
func (s *Dynamic) Name() string {
	return constants.StrategyDynamic
}

// Solve implements Solver. The budget is an inclusive spending cap.
func (s *Dynamic) Solve(catalog Catalog, budget float64) (Selection, error) {
	return observe(s.observer, s.Name(), catalog, budget, func() (Selection, error) {
		return s.solve(catalog, budget)
	})
}

func (s *Dynamic) solve(catalog Catalog, budget float64) (Selection, error) {
	if err := validate(catalog, budget); err != nil {
		return Selection{}, err
	}
	if !mathutil.IsWhole(budget) {
		return Selection{}, budgetError(budget, "must be a whole number")
	}
	for i, item := range catalog {
		if !mathutil.IsWhole(item.Cost) {
			return Selection{}, itemError(i, item, "cost", item.Cost, "must be a whole number")
		}
	}

	if len(catalog) == 0 {
		return newSelection(nil), nil
	}

	rows := len(catalog) + 1
	if cells := float64(rows) * (budget + 1); cells > float64(s.maxCells) {
		requested := int64(math.MaxInt64)
		if cells < math.MaxInt64 {
			requested = int64(cells)
		}
		return Selection{}, &ResourceLimitError{Resource: "dynamic table cells", Requested: requested, Limit: s.maxCells}
	}

	capacity := int(budget)
	cols := capacity + 1
	best := make([]float64, rows*cols)
	taken := make([]bool, rows*cols)

	for i := 1; i < rows; i++ {
		item := catalog[i-1]
		cost := capacity + 1
		if item.Cost <= budget {
			cost = int(item.Cost)
		}
		profit := item.Profit()
		prev, cur := (i-1)*cols, i*cols
		// Level 0 is evaluated too so zero-cost items are picked up.
		for b := 0; b < cols; b++ {
			skip := best[prev+b]
			best[cur+b] = skip
			if cost > b {
				continue
			}
			if take := best[prev+b-cost] + profit; take > skip {
				best[cur+b] = take
				taken[cur+b] = true
			}
		}
	}

	var picked []Item
	b := capacity
	for i := rows - 1; i > 0; i-- {
		if taken[i*cols+b] {
			item := catalog[i-1]
			picked = append(picked, item)
			b -= int(item.Cost)
		}
	}
	for l, r := 0, len(picked)-1; l < r; l, r = l+1, r-1 {
		picked[l], picked[r] = picked[r], picked[l]
	}
	return newSelection(picked), nil
}
