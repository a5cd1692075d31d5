package nonstationary

import (
	"fmt"
	"io"

	"github.com/zeu5/bandits/benchmarks/common"
	"github.com/zeu5/bandits/core"
	"github.com/zeu5/bandits/policies"
	"github.com/zeu5/bandits/quality"
	"github.com/zeu5/bandits/rewards"
	"golang.org/x/exp/rand"
)

// NewEnvironmentConstructor returns the testbed of drifting arms. All arms
// start at value zero and follow independent random walks, the observed
// reward adds normal noise on top of the walk.
func NewEnvironmentConstructor(flags *common.Flags) core.EnvironmentConstructor {
	return core.EnvironmentFunc(func(_ int, src rand.Source) (*core.KArmedBandit, error) {
		if flags.Arms <= 0 {
			return nil, fmt.Errorf("arms = %d: %w", flags.Arms, core.ErrNoArms)
		}
		arms := make([]rewards.Generator, flags.Arms)
		for i := range arms {
			walk, err := rewards.NewBrownianMotion(flags.DriftStd, flags.Period, src)
			if err != nil {
				return nil, err
			}
			noise, err := rewards.NewNormalNoise(0, flags.NoiseStd, flags.Period, src)
			if err != nil {
				return nil, err
			}
			arms[i] = rewards.NewValueNoise(walk, noise)
		}
		return core.NewKArmedBandit(arms...)
	})
}

func PrepareComparison(flags *common.Flags, writer io.Writer) *core.Comparison {
	cmp := core.NewComparison()
	common.AddAnalyses(cmp, writer)

	env := NewEnvironmentConstructor(flags)

	cmp.AddExperiment(&core.Experiment{
		Name:        "Random",
		Environment: env,
		Policy:      &policies.RandomConstructor{},
	})
	cmp.AddExperiment(&core.Experiment{
		Name:        "EpsilonMean",
		Environment: env,
		Policy:      policies.NewEpsilonGreedyConstructor(flags.Epsilon, &quality.SampleMeanConstructor{}),
	})
	cmp.AddExperiment(&core.Experiment{
		Name:        "EpsilonEMAConst",
		Environment: env,
		Policy:      policies.NewEpsilonGreedyConstructor(flags.Epsilon, &quality.EMAConstConstructor{Alpha: flags.Alpha}),
	})
	cmp.AddExperiment(&core.Experiment{
		Name:        "EpsilonEMA",
		Environment: env,
		Policy:      policies.NewEpsilonGreedyConstructor(flags.Epsilon, &quality.EMAConstructor{Alpha: flags.Alpha}),
	})
	cmp.AddExperiment(&core.Experiment{
		Name:        "UCBEMA",
		Environment: env,
		Policy: policies.NewGreedyConstructor(&quality.UCBConstructor{
			Quality: &quality.EMAConstructor{Alpha: flags.Alpha},
			C:       flags.UCBConstant,
		}),
	})
	cmp.AddExperiment(&core.Experiment{
		Name:        "Gradient",
		Environment: env,
		Policy: policies.NewSoftmaxStochasticConstructor(&quality.GradientPreferenceConstructor{
			Alpha: flags.StepSize,
		}),
	})
	return cmp
}
