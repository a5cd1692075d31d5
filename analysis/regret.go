package analysis

import (
	"github.com/zeu5/bandits/core"
	"github.com/zeu5/bandits/util"
)

type regretDataset struct {
	// Cumulative regret after every step
	Cumulative []float64
}

func (r *regretDataset) Copy() *regretDataset {
	return &regretDataset{
		Cumulative: util.CopyFloatSlice(r.Cumulative),
	}
}

func (r *regretDataset) Summary() float64 {
	if len(r.Cumulative) == 0 {
		return 0
	}
	return r.Cumulative[len(r.Cumulative)-1]
}

// RegretAnalyzer accumulates the gap between the true value of the optimal
// arm and the true value of the chosen arm
type RegretAnalyzer struct {
	dataset *regretDataset
}

var _ core.Analyzer = &RegretAnalyzer{}

func NewRegretAnalyzer() *RegretAnalyzer {
	return &RegretAnalyzer{
		dataset: &regretDataset{Cumulative: make([]float64, 0)},
	}
}

func (r *RegretAnalyzer) Analyze(_ *core.RunContext, trace *core.Trace) {
	total := r.dataset.Summary()
	for i := 0; i < trace.Len(); i++ {
		total += trace.Step(i).Regret()
		r.dataset.Cumulative = append(r.dataset.Cumulative, total)
	}
}

func (r *RegretAnalyzer) DataSet() core.DataSet {
	return r.dataset.Copy()
}

func (r *RegretAnalyzer) Reset() {
	r.dataset = &regretDataset{Cumulative: make([]float64, 0)}
}

type RegretAnalyzerConstructor struct{}

var _ core.AnalyzerConstructor = &RegretAnalyzerConstructor{}

func NewRegretAnalyzerConstructor() *RegretAnalyzerConstructor {
	return &RegretAnalyzerConstructor{}
}

func (r *RegretAnalyzerConstructor) NewAnalyzer(_ string, _ int) core.Analyzer {
	return NewRegretAnalyzer()
}
