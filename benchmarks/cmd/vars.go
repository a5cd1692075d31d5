package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/bandits/benchmarks/common"
)

var (
	flags       *common.Flags = common.DefaultFlags()
	arms        int
	period      int
	noiseStd    float64
	driftStd    float64
	epsilon     float64
	alpha       float64
	ucbConstant float64
	stepSize    float64

	numRuns     int
	steps       int
	seed        uint64
	reportEvery int
	debug       bool
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVar(&arms, "arms", flags.Arms, "Number of arms")
	cmd.PersistentFlags().IntVar(&period, "period", flags.Period, "Number of samples generated at once by noise processes")
	cmd.PersistentFlags().Float64Var(&noiseStd, "noise-std", flags.NoiseStd, "Standard deviation of the reward noise")
	cmd.PersistentFlags().Float64Var(&driftStd, "drift-std", flags.DriftStd, "Standard deviation of the random walk of drifting arms")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", flags.Epsilon, "Exploration probability of epsilon greedy")
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", flags.Alpha, "Learning rate of exponential moving averages")
	cmd.PersistentFlags().Float64Var(&ucbConstant, "ucb-c", flags.UCBConstant, "Exploration scale of UCB")
	cmd.PersistentFlags().Float64Var(&stepSize, "step-size", flags.StepSize, "Step size of gradient preferences")

	cmd.PersistentFlags().IntVar(&numRuns, "num-runs", flags.NumRuns, "Number of runs")
	cmd.PersistentFlags().IntVar(&steps, "steps", flags.Steps, "Number of steps per run")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Seed of the random sources, zero seeds from the clock")
	cmd.PersistentFlags().IntVar(&reportEvery, "report-every", flags.ReportEvery, "Steps between progress lines, zero disables them")
	cmd.PersistentFlags().BoolVar(&debug, "debug", flags.Debug, "Enable debug logging")
}

func UpdateFlags() {
	flags.Arms = arms
	flags.Period = period
	flags.NoiseStd = noiseStd
	flags.DriftStd = driftStd
	flags.Epsilon = epsilon
	flags.Alpha = alpha
	flags.UCBConstant = ucbConstant
	flags.StepSize = stepSize

	flags.NumRuns = numRuns
	flags.Steps = steps
	flags.Seed = seed
	flags.ReportEvery = reportEvery
	flags.Debug = debug
}
