package nonstationary

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandits/benchmarks/common"
	"github.com/zeu5/bandits/core"
	"golang.org/x/exp/rand"
)

func TestEnvironmentArmsStartAtZero(t *testing.T) {
	flags := common.DefaultFlags()
	flags.Arms = 3

	bandit, err := NewEnvironmentConstructor(flags).NewEnvironment(0, rand.NewSource(5))
	require.NoError(t, err)
	for i := 0; i < bandit.Len(); i++ {
		assert.Equal(t, 0.0, bandit.Value(i))
	}
}

func TestEnvironmentArmsDrift(t *testing.T) {
	flags := common.DefaultFlags()
	flags.Arms = 3
	flags.DriftStd = 0.5
	flags.Period = 4

	bandit, err := NewEnvironmentConstructor(flags).NewEnvironment(0, rand.NewSource(5))
	require.NoError(t, err)
	for step := 0; step < 10; step++ {
		bandit.Step()
	}
	moved := false
	for i := 0; i < bandit.Len(); i++ {
		if bandit.Value(i) != 0 {
			moved = true
		}
	}
	assert.True(t, moved)
}

func TestPrepareComparison(t *testing.T) {
	flags := common.DefaultFlags()
	flags.Arms = 4
	flags.Steps = 150
	flags.Seed = 9

	out := new(bytes.Buffer)
	cmp := PrepareComparison(flags, out)
	require.Len(t, cmp.Experiments, 6)
	require.NoError(t, cmp.Run(context.Background(), flags.NumRuns, flags.RunConfig(), nil))

	for _, e := range cmp.Experiments {
		assert.Contains(t, out.String(), e.Name)
	}
	assert.NotContains(t, out.String(), "error")
}

func TestEnvironmentRejectsArmCount(t *testing.T) {
	for _, arms := range []int{0, -1} {
		flags := common.DefaultFlags()
		flags.Arms = arms
		_, err := NewEnvironmentConstructor(flags).NewEnvironment(0, rand.NewSource(1))
		assert.ErrorIs(t, err, core.ErrNoArms, "arms = %d", arms)
	}
}
