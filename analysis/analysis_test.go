package analysis

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandits/core"
)

func testTrace() *core.Trace {
	trace := core.NewTrace()
	// optimal arm 1 has value 1, arm 0 has value 0.25
	arms := []int{0, 1, 1, 0}
	for i, arm := range arms {
		chosen := 0.25
		if arm == 1 {
			chosen = 1
		}
		trace.AddStep(&core.Step{
			Round:        i,
			Arm:          arm,
			Reward:       float64(i),
			Optimal:      1,
			ChosenValue:  chosen,
			OptimalValue: 1,
		})
	}
	return trace
}

func TestRegretAnalyzer(t *testing.T) {
	a := NewRegretAnalyzer()
	a.Analyze(core.NewRunContext(context.Background(), "e", 0), testTrace())

	d := a.DataSet().(*regretDataset)
	assert.Equal(t, []float64{0.75, 0.75, 0.75, 1.5}, d.Cumulative)
	assert.Equal(t, 1.5, d.Summary())

	a.Reset()
	assert.Equal(t, 0.0, a.DataSet().(*regretDataset).Summary())
}

func TestOptimalArmAnalyzer(t *testing.T) {
	a := NewOptimalArmAnalyzer()
	a.Analyze(core.NewRunContext(context.Background(), "e", 0), testTrace())
	d := a.DataSet().(*optimalDataset)
	assert.Equal(t, 4, d.Steps)
	assert.Equal(t, 2, d.Optimal)
	assert.Equal(t, 0.5, d.Summary())
}

func TestRewardAnalyzer(t *testing.T) {
	a := NewRewardAnalyzer()
	a.Analyze(core.NewRunContext(context.Background(), "e", 0), testTrace())
	assert.Equal(t, 1.5, a.DataSet().(*rewardDataset).Summary())
}

func TestSummaryComparator(t *testing.T) {
	out := new(bytes.Buffer)
	cc := NewSummaryComparatorConstructor("Regret", out)

	cc.NewComparator(0).Compare(
		[]string{"greedy", "ucb"},
		[]core.DataSet{&regretDataset{Cumulative: []float64{2}}, nil},
	)
	cc.NewComparator(1).Compare(
		[]string{"greedy", "ucb"},
		[]core.DataSet{&regretDataset{Cumulative: []float64{4}}, &regretDataset{Cumulative: []float64{1}}},
	)

	s := out.String()
	require.Contains(t, s, "Run 0: Regret")
	assert.Contains(t, s, "ucb     error")
	assert.Contains(t, s, "(mean 3.0000 ± 1.4142 over 2 runs)")
	assert.Equal(t, []float64{1}, cc.history["ucb"])
}
