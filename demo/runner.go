package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/ihilario9/Binary-Search-Tree/concurrent"
	errs "github.com/ihilario9/Binary-Search-Tree/errors"
	"github.com/ihilario9/Binary-Search-Tree/logs"
)

// RunnerProps are the required properties to create
// a new Runner instance
type RunnerProps struct {
	// Config of the demonstration
	Config *Config

	// Logger
	Logger logs.Logger

	// Output is where the reports are written
	Output io.Writer
}

// Runner runs one scenario per removal and writes the reports
// in the order of the removals
type Runner struct {
	config *Config
	logger logs.Logger
	output io.Writer
}

// NewRunner creates a new Runner
func NewRunner(props RunnerProps) *Runner {
	if props.Config == nil {
		panic("config must be set")
	}

	if props.Logger == nil {
		panic("logger must be set")
	}

	if props.Output == nil {
		panic("output must be set")
	}

	return &Runner{
		config: props.Config,
		logger: props.Logger.ForClass("demo", "Runner"),
		output: props.Output,
	}
}

// Scenarios returns the scenarios that Run executes
func (r *Runner) Scenarios() []Scenario {
	scenarios := make([]Scenario, 0, len(r.config.Tree.Removals))
	for _, removal := range r.config.Tree.Removals {
		scenarios = append(scenarios, Scenario{
			Elements: r.config.Tree.Elements,
			Remove:   removal,
		})
	}

	return scenarios
}

// Run runs all the scenarios and writes their reports followed by
// the summary, if enabled
func (r *Runner) Run(ctx context.Context) error {
	if logs.GetTraceID(ctx) == 0 {
		ctx = logs.WithTraceID(ctx, logs.NewTraceID())
	}

	scenarios := r.Scenarios()
	suppliers := make([]concurrent.Supplier[Report], 0, len(scenarios))
	for _, s := range scenarios {
		suppliers = append(suppliers, concurrent.SupplierFunc[Report](s.Run))
	}

	r.logger.Debug(ctx, "running scenarios", logs.MapFields{
		"scenarios":   len(scenarios),
		"elements":    len(r.config.Tree.Elements),
		"concurrency": r.config.Runner.Concurrency,
	})

	results := concurrent.BatchSliceWithOpts(ctx, suppliers, concurrent.BatchOpts{
		Concurrency: r.config.Runner.Concurrency,
	})

	w := newReportWriter(r.config.Output.Format, r.output)
	for _, res := range results {
		if res.Err() != nil {
			err := errs.Wrap(ErrCodeScenarioFailed, res.Err(),
				fmt.Sprintf("scenario %d failed", res.Index()))
			r.logger.Error(ctx, "scenario failed", err)
			return err
		}

		report := res.Value()
		r.logger.Debug(ctx, "scenario completed", logs.MapFields{
			"index":   res.Index(),
			"remove":  report.Scenario.Remove,
			"removed": report.Removed,
		})

		if err := w.WriteReport(report); err != nil {
			return errors.Wrap(err, "failed to write report")
		}
	}

	if r.config.Output.Summary {
		summary := Summarize(r.config.Tree.Elements, r.config.Tree.Ranges)
		if err := w.WriteSummary(summary); err != nil {
			return errors.Wrap(err, "failed to write summary")
		}
	}

	r.logger.Info(ctx, "scenarios completed", logs.MapFields{
		"scenarios": len(results),
	})

	return nil
}
