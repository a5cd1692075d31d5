package common

import (
	"log/slog"

	"github.com/zeu5/bandits/core"
)

type Flags struct {
	BanditFlags
	RunFlags
	Debug bool
}

type BanditFlags struct {
	Arms int
	// Regeneration block length of the noise processes
	Period   int
	NoiseStd float64
	// Standard deviation of the random walk increments of drifting arms
	DriftStd float64

	Epsilon     float64
	Alpha       float64
	UCBConstant float64
	StepSize    float64
}

type RunFlags struct {
	NumRuns     int
	Steps       int
	Seed        uint64
	ReportEvery int
}

func DefaultFlags() *Flags {
	return &Flags{
		BanditFlags: BanditFlags{
			Arms:        10,
			Period:      1000,
			NoiseStd:    1,
			DriftStd:    0.01,
			Epsilon:     0.1,
			Alpha:       0.1,
			UCBConstant: 2,
			StepSize:    0.1,
		},
		RunFlags: RunFlags{
			NumRuns:     1,
			Steps:       1000,
			Seed:        0,
			ReportEvery: 100,
		},
		Debug: false,
	}
}

func (f *Flags) RunConfig() *core.RunConfig {
	return &core.RunConfig{
		Steps:       f.Steps,
		Seed:        f.Seed,
		ReportEvery: f.ReportEvery,
	}
}

// Record logs the effective configuration
func (f *Flags) Record() {
	slog.Info("Configuration",
		slog.Group("bandit",
			"arms", f.Arms,
			"period", f.Period,
			"noise_std", f.NoiseStd,
			"drift_std", f.DriftStd,
			"epsilon", f.Epsilon,
			"alpha", f.Alpha,
			"ucb_c", f.UCBConstant,
			"step_size", f.StepSize,
		),
		slog.Group("run",
			"runs", f.NumRuns,
			"steps", f.Steps,
			"seed", f.Seed,
		),
	)
}
