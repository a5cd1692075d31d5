package analysis

import "github.com/zeu5/bandits/core"

type optimalDataset struct {
	Steps   int
	Optimal int
}

// Summary is the fraction of steps where an optimal arm was chosen
func (o *optimalDataset) Summary() float64 {
	if o.Steps == 0 {
		return 0
	}
	return float64(o.Optimal) / float64(o.Steps)
}

type OptimalArmAnalyzer struct {
	dataset *optimalDataset
}

var _ core.Analyzer = &OptimalArmAnalyzer{}

func NewOptimalArmAnalyzer() *OptimalArmAnalyzer {
	return &OptimalArmAnalyzer{dataset: &optimalDataset{}}
}

func (o *OptimalArmAnalyzer) Analyze(_ *core.RunContext, trace *core.Trace) {
	for i := 0; i < trace.Len(); i++ {
		o.dataset.Steps++
		if trace.Step(i).IsOptimal() {
			o.dataset.Optimal++
		}
	}
}

func (o *OptimalArmAnalyzer) DataSet() core.DataSet {
	d := *o.dataset
	return &d
}

func (o *OptimalArmAnalyzer) Reset() {
	o.dataset = &optimalDataset{}
}

type OptimalArmAnalyzerConstructor struct{}

var _ core.AnalyzerConstructor = &OptimalArmAnalyzerConstructor{}

func NewOptimalArmAnalyzerConstructor() *OptimalArmAnalyzerConstructor {
	return &OptimalArmAnalyzerConstructor{}
}

func (o *OptimalArmAnalyzerConstructor) NewAnalyzer(_ string, _ int) core.Analyzer {
	return NewOptimalArmAnalyzer()
}
