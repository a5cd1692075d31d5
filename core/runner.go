package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zeu5/bandits/util"
)

type experimentRunContext struct {
	run       int
	index     int
	ctx       context.Context
	analyzers map[string]Analyzer

	writer io.Writer

	*RunConfig
}

type ExperimentResult struct {
	Steps         int
	OptimalChoice int

	Error    error
	Datasets map[string]DataSet
}

func (r *ExperimentResult) IsError() bool {
	return r.Error != nil
}

// run plays the experiment for the configured number of steps. Every step
// advances the arms, asks the policy for an arm and feeds the observed
// reward back to it.
func (e *Experiment) run(ctx *experimentRunContext) *ExperimentResult {
	result := &ExperimentResult{
		Datasets: make(map[string]DataSet),
	}

	// Experiments of the same run share the environment seed so they face
	// the same reward realizations
	envSrc := util.NewSource(util.DeriveSeed(ctx.Seed, ctx.run, 0))
	policySrc := util.NewSource(util.DeriveSeed(ctx.Seed, ctx.run, ctx.index+1))

	bandit, err := e.Environment.NewEnvironment(ctx.run, envSrc)
	if err != nil {
		result.Error = fmt.Errorf("creating environment: %w", err)
		return result
	}
	policy, err := e.Policy.NewPolicy(bandit.Len(), policySrc)
	if err != nil {
		result.Error = fmt.Errorf("creating policy: %w", err)
		return result
	}

	rCtx := NewRunContext(ctx.ctx, e.Name, ctx.run)
	rCtx.Steps = ctx.Steps

StepLoop:
	for step := 0; step < ctx.Steps; step++ {
		select {
		case <-ctx.ctx.Done():
			result.Error = ctx.ctx.Err()
			break StepLoop
		default:
		}

		bandit.Step()
		arm := policy.Choice()
		reward := bandit.QueryArm(arm)
		policy.Update(arm, reward)

		optimal := bandit.OptimalArm()
		s := &Step{
			Round:        step,
			Arm:          arm,
			Reward:       reward,
			Optimal:      optimal,
			ChosenValue:  bandit.Value(arm),
			OptimalValue: bandit.Value(optimal),
		}
		rCtx.Trace.AddStep(s)
		result.Steps++
		if s.IsOptimal() {
			result.OptimalChoice++
		}

		if ctx.ReportEvery > 0 && (step+1)%ctx.ReportEvery == 0 && ctx.writer != nil {
			fmt.Fprintf(
				ctx.writer,
				"Experiment: %s, Run %d, Steps: %d/%d, Optimal: %d\n",
				e.Name, ctx.run, result.Steps, ctx.Steps, result.OptimalChoice,
			)
		}
	}
	if result.Error != nil {
		slog.Warn("Experiment stopped", "experiment", e.Name, "run", ctx.run, "error", result.Error)
		return result
	}

	for _, a := range ctx.analyzers {
		a.Analyze(rCtx, rCtx.Trace)
	}
	for name, a := range ctx.analyzers {
		result.Datasets[name] = a.DataSet()
		a.Reset()
	}
	return result
}

// Run executes every experiment for the given number of runs, one after
// the other, and passes the datasets of each run to the comparators.
// Progress lines are written to writer when it is not nil.
//
// A zero seed is replaced once by a seed drawn from the clock, so the
// experiments of a run still share their environment.
func (c *Comparison) Run(ctx context.Context, runs int, rConfig *RunConfig, writer io.Writer) error {
	config := *rConfig
	if config.Seed == 0 {
		config.Seed = util.ClockSeed()
		slog.Debug("Drew seed from the clock", "seed", config.Seed)
	}
	rConfig = &config

	for run := 0; run < runs; run++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		results := make(map[string]*ExperimentResult)
		experimentNames := make([]string, 0)

		// Run experiments
		for i, e := range c.Experiments {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			eCtx := &experimentRunContext{
				run:       run,
				index:     i,
				ctx:       ctx,
				analyzers: make(map[string]Analyzer),
				writer:    writer,
				RunConfig: rConfig,
			}
			for name, aC := range c.Analyzers {
				eCtx.analyzers[name] = aC.NewAnalyzer(e.Name, run)
			}

			slog.Debug("Starting experiment", "experiment", e.Name, "run", run, "steps", rConfig.Steps)
			result := e.run(eCtx)
			if result.IsError() {
				slog.Error("Experiment failed", "experiment", e.Name, "run", run, "error", result.Error)
			} else {
				slog.Info("Experiment finished",
					"experiment", e.Name,
					"run", run,
					"steps", result.Steps,
					"optimal", result.OptimalChoice,
				)
			}
			results[e.Name] = result
			experimentNames = append(experimentNames, e.Name)
		}

		// Gather datasets to run comparisons
		datasets := make(map[string][]DataSet)
		for _, expName := range experimentNames {
			result := results[expName]
			for name := range c.Analyzers {
				if result.IsError() {
					datasets[name] = append(datasets[name], nil)
				} else {
					datasets[name] = append(datasets[name], result.Datasets[name])
				}
			}
		}
		for name, cC := range c.Comparators {
			cC.NewComparator(run).Compare(experimentNames, datasets[name])
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}
