// Package runner wires configuration, catalog loading and the solvers
// together for a single invocation.
package runner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/investment-picker/internal/catalog"
	"github.com/iwvelando/investment-picker/internal/config"
	"github.com/iwvelando/investment-picker/internal/solver"
	"github.com/iwvelando/investment-picker/pkg/constants"
	"github.com/iwvelando/investment-picker/pkg/mathutil"
	"go.uber.org/zap"
)

// Runner executes the configured strategies against one catalog.
type Runner struct {
	logger *zap.Logger
	conf   *config.Configuration
	runID  string
}

// Result is the outcome of one strategy.
type Result struct {
	RunID     string           `yaml:"runId"`
	Strategy  string           `yaml:"strategy"`
	Budget    float64          `yaml:"budget"`
	Selection solver.Selection `yaml:"selection"`
	Elapsed   time.Duration    `yaml:"-"`
}

// NewRunner constructs a Runner for the provided configuration.
func NewRunner(logger *zap.Logger, conf *config.Configuration) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, conf: conf, runID: uuid.NewString()}, nil
}

// RunID identifies this invocation in logs and reports.
func (r *Runner) RunID() string {
	return r.runID
}

// Strategies returns the solver names the configuration asks for, in run order.
func (r *Runner) Strategies() []string {
	if r.conf.Solver.Strategy == constants.StrategyAll {
		return solver.Strategies()
	}
	return []string{r.conf.Solver.Strategy}
}

// LoadCatalog reads the configured stock sheet.
func (r *Runner) LoadCatalog() (solver.Catalog, error) {
	return catalog.LoadFile(r.logger, r.conf.Input.File, r.conf.CatalogOptions())
}

// Run solves the catalog with every configured strategy. The first solver
// error aborts the run and is returned wrapped with the strategy name.
func (r *Runner) Run(items solver.Catalog) ([]Result, error) {
	strategies := r.Strategies()
	results := make([]Result, 0, len(strategies))
	budget := r.conf.Solver.Budget

	for _, name := range strategies {
		var elapsed time.Duration
		observer := func(e solver.Event) {
			r.logEvent(e)
			if e.Phase == solver.PhaseFinish {
				elapsed = e.Elapsed
			}
		}

		s, err := solver.New(name, r.conf.SolverOptions(observer))
		if err != nil {
			return nil, err
		}
		selection, err := s.Solve(items, budget)
		if err != nil {
			return nil, fmt.Errorf("%s solver: %w", name, err)
		}

		results = append(results, Result{
			RunID:     r.runID,
			Strategy:  name,
			Budget:    budget,
			Selection: selection,
			Elapsed:   elapsed,
		})
	}

	if len(results) > 1 {
		r.logComparison(results)
	}
	return results, nil
}

func (r *Runner) logEvent(e solver.Event) {
	switch e.Phase {
	case solver.PhaseStart:
		r.logger.Debug("solver started",
			zap.String("op", "runner.Run"),
			zap.String("runId", r.runID),
			zap.String("strategy", e.Strategy),
			zap.Int("items", e.Items),
			zap.Float64("budget", e.Budget),
		)
	case solver.PhaseFinish:
		if e.Err != nil {
			r.logger.Warn("solver failed",
				zap.String("op", "runner.Run"),
				zap.String("runId", r.runID),
				zap.String("strategy", e.Strategy),
				zap.Duration("elapsed", e.Elapsed),
				zap.Error(e.Err),
			)
			return
		}
		r.logger.Info("solver finished",
			zap.String("op", "runner.Run"),
			zap.String("runId", r.runID),
			zap.String("strategy", e.Strategy),
			zap.Int("items", e.Items),
			zap.Float64("budget", e.Budget),
			zap.Int("selected", len(e.Selection.Items)),
			zap.Float64("totalProfit", e.Selection.TotalProfit),
			zap.Float64("totalCost", e.Selection.TotalCost),
			zap.Duration("elapsed", e.Elapsed),
		)
	}
}

// logComparison reports how far each strategy landed from the best profit,
// rounded to cents, and flags exact strategies that disagree.
func (r *Runner) logComparison(results []Result) {
	best := results[0]
	for _, res := range results[1:] {
		if res.Selection.TotalProfit > best.Selection.TotalProfit {
			best = res
		}
	}
	for _, res := range results {
		gap := mathutil.Round(best.Selection.TotalProfit - res.Selection.TotalProfit)
		r.logger.Info("strategy comparison",
			zap.String("op", "runner.Run"),
			zap.String("runId", r.runID),
			zap.String("strategy", res.Strategy),
			zap.Float64("totalProfit", res.Selection.TotalProfit),
			zap.Float64("gap", gap),
			zap.Bool("matchesBest", mathutil.IsZero(gap)),
		)
	}

	exact := exactProfits(results)
	if len(exact) == 2 && !mathutil.WithinTolerance(exact[0], exact[1], constants.CurrencyTolerance) {
		r.logger.Error("exact strategies disagree",
			zap.String("op", "runner.Run"),
			zap.String("runId", r.runID),
			zap.Float64(constants.StrategyExhaustive, exact[0]),
			zap.Float64(constants.StrategyDynamic, exact[1]),
		)
	}
}

// exactProfits returns the exhaustive and dynamic profits, in that order,
// when both strategies ran.
func exactProfits(results []Result) []float64 {
	var exhaustive, dynamic *Result
	for i := range results {
		switch results[i].Strategy {
		case constants.StrategyExhaustive:
			exhaustive = &results[i]
		case constants.StrategyDynamic:
			dynamic = &results[i]
		}
	}
	if exhaustive == nil || dynamic == nil {
		return nil
	}
	return []float64{exhaustive.Selection.TotalProfit, dynamic.Selection.TotalProfit}
}
