package solver_test

import (
	"testing"

	"github.com/iwvelando/investment-picker/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGreedy_StrictBudget shows that an item landing exactly on the budget
// is rejected.
func TestGreedy_StrictBudget(t *testing.T) {
	sel, err := solver.NewGreedy(solver.Options{}).Solve(sampleCatalog(), 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, names(sel), "C alone equals the budget and A+B reaches it")
	assert.Equal(t, 20.0, sel.TotalCost)
	assert.InDelta(t, 2.0, sel.TotalProfit, 1e-9)
}

func TestGreedy_TakesWhileUnderBudget(t *testing.T) {
	sel, err := solver.NewGreedy(solver.Options{}).Solve(sampleCatalog(), 101)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names(sel))
	assert.Equal(t, 100.0, sel.TotalCost)
}

// TestGreedy_Suboptimal documents the approximation gap against the exact solver.
func TestGreedy_Suboptimal(t *testing.T) {
	catalog := solver.Catalog{
		{Name: "X", Cost: 10, ProfitPercentage: 50},
		{Name: "Y", Cost: 60, ProfitPercentage: 40},
		{Name: "Z", Cost: 40, ProfitPercentage: 40},
	}
	greedy, err := solver.NewGreedy(solver.Options{}).Solve(catalog, 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, names(greedy))
	assert.InDelta(t, 29.0, greedy.TotalProfit, 1e-9)

	exact, err := solver.NewDynamic(solver.Options{}).Solve(catalog, 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"Y", "Z"}, names(exact))
	assert.InDelta(t, 40.0, exact.TotalProfit, 1e-9)
}

func TestGreedy_TiesKeepCatalogOrder(t *testing.T) {
	catalog := solver.Catalog{
		{Name: "First", Cost: 30, ProfitPercentage: 10},
		{Name: "Second", Cost: 30, ProfitPercentage: 10},
	}
	sel, err := solver.NewGreedy(solver.Options{}).Solve(catalog, 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"First"}, names(sel))
}

func TestGreedy_DoesNotMutateCatalog(t *testing.T) {
	catalog := sampleCatalog()
	_, err := solver.NewGreedy(solver.Options{}).Solve(catalog, 500)
	require.NoError(t, err)
	assert.Equal(t, sampleCatalog(), catalog)
}
