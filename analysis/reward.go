package analysis

import (
	"github.com/zeu5/bandits/core"
	"github.com/zeu5/bandits/util"
	"gonum.org/v1/gonum/stat"
)

type rewardDataset struct {
	Rewards []float64
}

// Summary is the average observed reward
func (r *rewardDataset) Summary() float64 {
	if len(r.Rewards) == 0 {
		return 0
	}
	return stat.Mean(r.Rewards, nil)
}

type RewardAnalyzer struct {
	dataset *rewardDataset
}

var _ core.Analyzer = &RewardAnalyzer{}

func NewRewardAnalyzer() *RewardAnalyzer {
	return &RewardAnalyzer{dataset: &rewardDataset{Rewards: make([]float64, 0)}}
}

func (r *RewardAnalyzer) Analyze(_ *core.RunContext, trace *core.Trace) {
	for i := 0; i < trace.Len(); i++ {
		r.dataset.Rewards = append(r.dataset.Rewards, trace.Step(i).Reward)
	}
}

func (r *RewardAnalyzer) DataSet() core.DataSet {
	return &rewardDataset{Rewards: util.CopyFloatSlice(r.dataset.Rewards)}
}

func (r *RewardAnalyzer) Reset() {
	r.dataset = &rewardDataset{Rewards: make([]float64, 0)}
}

type RewardAnalyzerConstructor struct{}

var _ core.AnalyzerConstructor = &RewardAnalyzerConstructor{}

func NewRewardAnalyzerConstructor() *RewardAnalyzerConstructor {
	return &RewardAnalyzerConstructor{}
}

func (r *RewardAnalyzerConstructor) NewAnalyzer(_ string, _ int) core.Analyzer {
	return NewRewardAnalyzer()
}
