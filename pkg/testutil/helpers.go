// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/investment-picker/internal/runner"
	"github.com/iwvelando/investment-picker/internal/solver"
)

// FindResult finds a result by strategy name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []runner.Result, strategy string) *runner.Result {
	for i := range results {
		if results[i].Strategy == strategy {
			return &results[i]
		}
	}
	return nil
}

// ItemNames lists the names of the selected items in order.
func ItemNames(sel solver.Selection) []string {
	names := make([]string, 0, len(sel.Items))
	for _, item := range sel.Items {
		names = append(names, item.Name)
	}
	return names
}
