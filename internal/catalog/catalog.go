// Package catalog loads investable items from tabular stock sheets.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/investment-picker/internal/solver"
	"github.com/iwvelando/investment-picker/pkg/constants"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Columns names the header cells holding each item attribute.
type Columns struct {
	Name   string
	Cost   string
	Profit string
}

// DefaultColumns returns the headers used by the reference stock sheets.
func DefaultColumns() Columns {
	return Columns{
		Name:   constants.DefaultNameColumn,
		Cost:   constants.DefaultCostColumn,
		Profit: constants.DefaultProfitColumn,
	}
}

func (c Columns) withDefaults() Columns {
	d := DefaultColumns()
	if strings.TrimSpace(c.Name) == "" {
		c.Name = d.Name
	}
	if strings.TrimSpace(c.Cost) == "" {
		c.Cost = d.Cost
	}
	if strings.TrimSpace(c.Profit) == "" {
		c.Profit = d.Profit
	}
	return c
}

// Options controls how rows are turned into items.
type Options struct {
	Columns Columns
	// SkipInvalid drops unparsable rows and rows with a non-positive cost
	// instead of failing the load.
	SkipInvalid bool
}

// ErrMissingColumn is returned when a configured header is absent.
var ErrMissingColumn = errors.New("catalog: missing column")

// LoadFile reads a CSV stock sheet from path.
func LoadFile(logger *zap.Logger, path string, opts Options) (solver.Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	items, err := Read(logger, file, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return items, nil
}

// Read parses CSV records from r. The first record is the header.
func Read(logger *zap.Logger, r io.Reader, opts Options) (solver.Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cols := opts.Columns.withDefaults()

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		logger.Info("catalog read successfully", zap.String("op", "catalog.Read"), zap.Int("items", 0))
		return solver.Catalog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	nameIdx, costIdx, profitIdx := -1, -1, -1
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{cols.Name, &nameIdx},
		{cols.Cost, &costIdx},
		{cols.Profit, &profitIdx},
	} {
		i, ok := index[col.name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col.name)
		}
		*col.dst = i
	}

	items := solver.Catalog{}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		item, err := parseRecord(record, nameIdx, costIdx, profitIdx)
		if err == nil && opts.SkipInvalid && item.Cost <= 0 {
			err = fmt.Errorf("non-positive cost %v", item.Cost)
		}
		if err != nil {
			if opts.SkipInvalid {
				logger.Warn("skipping catalog row",
					zap.String("op", "catalog.Read"),
					zap.Int("line", line),
					zap.Error(err),
				)
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if ce := logger.Check(zap.DebugLevel, "read stock"); ce != nil {
			ce.Write(
				zap.String("name", item.Name),
				zap.Float64("cost", item.Cost),
				zap.Float64("profitPercentage", item.ProfitPercentage),
			)
		}
		items = append(items, item)
	}

	logger.Info("catalog read successfully",
		zap.String("op", "catalog.Read"),
		zap.Int("items", len(items)),
	)
	return items, nil
}

func parseRecord(record []string, nameIdx, costIdx, profitIdx int) (solver.Item, error) {
	for _, i := range []int{nameIdx, costIdx, profitIdx} {
		if i >= len(record) {
			return solver.Item{}, fmt.Errorf("record has %d fields, need at least %d", len(record), i+1)
		}
	}

	name := strings.TrimSpace(record[nameIdx])
	if name == "" {
		return solver.Item{}, errors.New("empty item name")
	}
	cost, err := ParseAmount(record[costIdx])
	if err != nil {
		return solver.Item{}, fmt.Errorf("item %s cost: %w", name, err)
	}
	pct, err := ParsePercentage(record[profitIdx])
	if err != nil {
		return solver.Item{}, fmt.Errorf("item %s profit: %w", name, err)
	}

	return solver.Item{
		Name:             name,
		Cost:             cost.InexactFloat64(),
		ProfitPercentage: pct.InexactFloat64(),
	}, nil
}

// ParseAmount parses a decimal amount such as "20.50" or "20,50".
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, constants.CurrencySymbol)
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, errors.New("empty value")
	}
	return decimal.NewFromString(s)
}

// ParsePercentage parses a percentage with an optional trailing "%".
func ParsePercentage(raw string) (decimal.Decimal, error) {
	s := strings.TrimSuffix(strings.TrimSpace(raw), "%")
	return ParseAmount(s)
}
