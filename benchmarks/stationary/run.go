package stationary

import (
	"fmt"
	"io"

	"github.com/zeu5/bandits/benchmarks/common"
	"github.com/zeu5/bandits/core"
	"github.com/zeu5/bandits/policies"
	"github.com/zeu5/bandits/quality"
	"github.com/zeu5/bandits/rewards"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewEnvironmentConstructor returns the testbed of stationary arms. Every
// arm has a fixed value drawn from N(0, 1) when the environment is created
// and pays that value plus normal noise.
func NewEnvironmentConstructor(flags *common.Flags) core.EnvironmentConstructor {
	return core.EnvironmentFunc(func(_ int, src rand.Source) (*core.KArmedBandit, error) {
		if flags.Arms <= 0 {
			return nil, fmt.Errorf("arms = %d: %w", flags.Arms, core.ErrNoArms)
		}
		values := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
		arms := make([]rewards.Generator, flags.Arms)
		for i := range arms {
			noise, err := rewards.NewNormalNoise(0, flags.NoiseStd, flags.Period, src)
			if err != nil {
				return nil, err
			}
			arms[i] = rewards.NewValueNoise(rewards.NewConstant(values.Rand()), noise)
		}
		return core.NewKArmedBandit(arms...)
	})
}

func PrepareComparison(flags *common.Flags, writer io.Writer) *core.Comparison {
	cmp := core.NewComparison()
	common.AddAnalyses(cmp, writer)

	env := NewEnvironmentConstructor(flags)
	mean := &quality.SampleMeanConstructor{}

	cmp.AddExperiment(&core.Experiment{
		Name:        "Random",
		Environment: env,
		Policy:      &policies.RandomConstructor{},
	})
	cmp.AddExperiment(&core.Experiment{
		Name:        "Greedy",
		Environment: env,
		Policy:      policies.NewGreedyConstructor(mean),
	})
	cmp.AddExperiment(&core.Experiment{
		Name:        "EpsilonGreedy",
		Environment: env,
		Policy:      policies.NewEpsilonGreedyConstructor(flags.Epsilon, mean),
	})
	cmp.AddExperiment(&core.Experiment{
		Name:        "UCB",
		Environment: env,
		Policy: policies.NewGreedyConstructor(&quality.UCBConstructor{
			Quality: mean,
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
