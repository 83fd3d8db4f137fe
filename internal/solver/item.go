package solver

import "github.com/iwvelando/investment-picker/pkg/mathutil"

// Item is one investable instrument.
type Item struct {
	Name             string  `yaml:"name"`
	Cost             float64 `yaml:"cost"`
	ProfitPercentage float64 `yaml:"profitPercentage"`
}

// Profit is the return of holding the item over the fixed horizon.
func (i Item) Profit() float64 {
	return mathutil.ApplyPercentage(i.Cost, i.ProfitPercentage)
}

// Catalog is the ordered collection of candidate items.
type Catalog []Item

// Selection is a feasible subset of a Catalog with its aggregate cost and
// profit. Items keep their catalog order.
type Selection struct {
	Items       []Item  `yaml:"items"`
	TotalProfit float64 `yaml:"totalProfit"`
	TotalCost   float64 `yaml:"totalCost"`
}

// Empty reports whether nothing was selected.
func (s Selection) Empty() bool {
	return len(s.Items) == 0
}

// EvaluateCombination returns the summed cost and profit of items.
func EvaluateCombination(items []Item) (totalCost, totalProfit float64) {
	for _, item := range items {
		totalCost += item.Cost
		totalProfit += item.Profit()
	}
	return totalCost, totalProfit
}

func newSelection(items []Item) Selection {
	if items == nil {
		items = []Item{}
	}
	cost, profit := EvaluateCombination(items)
	return Selection{Items: items, TotalProfit: profit, TotalCost: cost}
}
