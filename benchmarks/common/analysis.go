package common

import (
	"io"

	"github.com/zeu5/bandits/analysis"
	"github.com/zeu5/bandits/core"
)

// AddAnalyses registers the regret, optimal arm and reward analyses, each
// printing a per run summary to writer
func AddAnalyses(cmp *core.Comparison, writer io.Writer) {
	cmp.AddAnalysis("Regret", analysis.NewRegretAnalyzerConstructor(), analysis.NewSummaryComparatorConstructor("Regret", writer))
	cmp.AddAnalysis("OptimalArm", analysis.NewOptimalArmAnalyzerConstructor(), analysis.NewSummaryComparatorConstructor("Optimal arm rate", writer))
	cmp.AddAnalysis("Reward", analysis.NewRewardAnalyzerConstructor(), analysis.NewSummaryComparatorConstructor("Average reward", writer))
}
