package solver_test

import (
	"testing"

	"github.com/iwvelando/investment-picker/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamic_SampleScenario(t *testing.T) {
	sel, err := solver.NewDynamic(solver.Options{}).Solve(sampleCatalog(), 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, names(sel))
	assert.InDelta(t, 10.0, sel.TotalProfit, 1e-9)
	assert.Equal(t, 50.0, sel.TotalCost)
}

func TestDynamic_ReconstructsCatalogOrder(t *testing.T) {
	sel, err := solver.NewDynamic(solver.Options{}).Solve(sampleCatalog(), 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names(sel))
	assert.InDelta(t, 13.5, sel.TotalProfit, 1e-9)
}

func TestDynamic_FractionalCostRejected(t *testing.T) {
	catalog := solver.Catalog{
		{Name: "A", Cost: 20, ProfitPercentage: 10},
		{Name: "Frac", Cost: 20.5, ProfitPercentage: 10},
	}
	_, err := solver.NewDynamic(solver.Options{}).Solve(catalog, 50)
	require.ErrorIs(t, err, solver.ErrInvalidInput)

	var invalid *solver.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "cost", invalid.Field)
	assert.Equal(t, 1, invalid.Index)
	assert.Equal(t, "Frac", invalid.Item)
	assert.Equal(t, 20.5, invalid.Value)
}

func TestDynamic_FractionalBudgetRejected(t *testing.T) {
	_, err := solver.NewDynamic(solver.Options{}).Solve(sampleCatalog(), 50.5)
	var invalid *solver.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "budget", invalid.Field)
}

func TestDynamic_ResourceLimit(t *testing.T) {
	s := solver.NewDynamic(solver.Options{MaxTableCells: 100})
	_, err := s.Solve(sampleCatalog(), 50)
	require.ErrorIs(t, err, solver.ErrResourceLimit)

	var limit *solver.ResourceLimitError
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, int64(4*51), limit.Requested)
	assert.Equal(t, int64(100), limit.Limit)
}

func TestDynamic_HugeBudgetRejectedBeforeAllocation(t *testing.T) {
	_, err := solver.NewDynamic(solver.Options{}).Solve(sampleCatalog(), 1e18)
	assert.ErrorIs(t, err, solver.ErrResourceLimit)
}

func TestDynamic_EmptyCatalogIgnoresTableLimit(t *testing.T) {
	sel, err := solver.NewDynamic(solver.Options{MaxTableCells: 10}).Solve(nil, 1_000_000)
	require.NoError(t, err)
	assert.True(t, sel.Empty())
}

func TestDynamic_ItemCostAboveBudgetSkipped(t *testing.T) {
	catalog := solver.Catalog{
		{Name: "Huge", Cost: 1e12, ProfitPercentage: 50},
		{Name: "Small", Cost: 5, ProfitPercentage: 10},
	}
	sel, err := solver.NewDynamic(solver.Options{}).Solve(catalog, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Small"}, names(sel))
}

func TestDynamic_DuplicateItemsAreDistinct(t *testing.T) {
	catalog := solver.Catalog{
		{Name: "D", Cost: 10, ProfitPercentage: 10},
		{Name: "D", Cost: 10, ProfitPercentage: 10},
	}
	sel, err := solver.NewDynamic(solver.Options{}).Solve(catalog, 20)
	require.NoError(t, err)
	assert.Len(t, sel.Items, 2)
	assert.InDelta(t, 2.0, sel.TotalProfit, 1e-9)
}
