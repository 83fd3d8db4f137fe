// Package output provides utilities for formatting and displaying selection results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/investment-picker/internal/runner"
	"github.com/iwvelando/investment-picker/pkg/constants"
	"github.com/iwvelando/investment-picker/pkg/format"
	"gopkg.in/yaml.v3"
)

// Write renders results in the named output format.
func Write(w io.Writer, outputFormat string, results []runner.Result) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, results)
	case constants.OutputFormatCSV:
		return CsvFormat(w, results)
	case constants.OutputFormatYAML:
		return YamlFormat(w, results)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// PrettyFormat outputs a human-readable report per strategy.
func PrettyFormat(w io.Writer, results []runner.Result) error {
	for i, result := range results {
		sel := result.Selection
		lines := []string{
			fmt.Sprintf("--- Results for strategy %s (budget %s) ---\n", result.Strategy, format.Currency(result.Budget)),
			"RESULTS : \n",
			fmt.Sprintf("Profit after 2 years : %s\n", format.NumericCurrency(sel.TotalProfit)),
			fmt.Sprintf("Cost: %s\n", format.Currency(sel.TotalCost)),
		}
		for _, item := range sel.Items {
			lines = append(lines, fmt.Sprintf("%s - %s\n", item.Name, format.Currency(item.Cost)))
		}
		if len(results) > 1 && i < len(results)-1 {
			lines = append(lines, "\n")
		}
		for _, line := range lines {
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// CsvFormat outputs one row per selected item and a totals row per strategy.
func CsvFormat(w io.Writer, results []runner.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"strategy", "name", "cost", "profit_percentage", "profit"}); err != nil {
		return err
	}
	for _, result := range results {
		for _, item := range result.Selection.Items {
			row := []string{
				result.Strategy,
				item.Name,
				format.Fixed(item.Cost),
				strconv.FormatFloat(item.ProfitPercentage, 'f', -1, 64),
				format.Fixed(item.Profit()),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		total := []string{
			result.Strategy,
			"TOTAL",
			format.Fixed(result.Selection.TotalCost),
			"",
			format.Fixed(result.Selection.TotalProfit),
		}
		if err := cw.Write(total); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// YamlFormat outputs the results as a YAML sequence.
func YamlFormat(w io.Writer, results []runner.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}
	return enc.Close()
}
