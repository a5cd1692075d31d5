package common

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandits/policies"
	"github.com/zeu5/bandits/quality"
	"github.com/zeu5/bandits/rewards"
	"golang.org/x/exp/rand"
)

const drifting = `
name: drifting
runs: 2
steps: 40
seed: 3
arms:
  - kind: constant
    reward: 0.5
  - kind: value_noise
    value: {kind: brownian, std: 0.01, period: 16}
    noise: {kind: normal, std: 1, period: 16}
  - kind: sum
    left: {kind: constant, reward: 1}
    right: {kind: normal, mean: 0, std: 0.5}
agents:
  - name: ucb
    policy: greedy
    quality: {kind: ucb, c: 2, quality: {kind: ema, alpha: 0.1}}
  - name: eps
    policy: epsilon
    epsilon: 0.1
    quality: {kind: ema_const, alpha: 0.2, prior: [1, 1, 1]}
  - policy: softmax
    quality: {kind: gradient, alpha: 0.1}
  - name: random
    policy: random
`

func TestParseExperimentFile(t *testing.T) {
	f, err := ParseExperimentFile([]byte(drifting))
	require.NoError(t, err)
	assert.Equal(t, "drifting", f.Name)
	assert.Len(t, f.Arms, 3)
	assert.Len(t, f.Agents, 4)

	bandit, err := f.NewEnvironment(0, rand.NewSource(1))
	require.NoError(t, err)
	assert.Equal(t, 3, bandit.Len())
	assert.Equal(t, 0.5, bandit.QueryArm(0))
	assert.Equal(t, 0.0, bandit.Value(1), "brownian walk starts at zero")

	flags := DefaultFlags()
	f.Apply(flags)
	assert.Equal(t, 2, flags.NumRuns)
	assert.Equal(t, 40, flags.Steps)
	assert.Equal(t, uint64(3), flags.Seed)
}

func TestParseExperimentFileErrors(t *testing.T) {
	cases := map[string]struct {
		doc string
		err error
	}{
		"unknown generator": {
			doc: "arms: [{kind: poisson}]\nagents: [{policy: random}]",
			err: ErrUnknownKind,
		},
		"missing noise": {
			doc: "arms: [{kind: value_noise, value: {kind: constant}}]\nagents: [{policy: random}]",
			err: ErrMissing,
		},
		"bad period": {
			doc: "arms: [{kind: normal, std: 1, period: -1}]\nagents: [{policy: random}]",
			err: rewards.ErrInvalidPeriod,
		},
		"bad epsilon": {
			doc: "arms: [{kind: constant}]\nagents: [{policy: epsilon, epsilon: 2, quality: {kind: mean}}]",
			err: policies.ErrInvalidEpsilon,
		},
		"bad prior": {
			doc: "arms: [{kind: constant}]\nagents: [{policy: greedy, quality: {kind: mean, prior: [1, 2]}}]",
			err: quality.ErrPriorLength,
		},
		"bad alpha": {
			doc: "arms: [{kind: constant}]\nagents: [{policy: greedy, quality: {kind: ema, alpha: 3}}]",
			err: quality.ErrInvalidRate,
		},
		"softmax over mean": {
			doc: "arms: [{kind: constant}]\nagents: [{policy: softmax, quality: {kind: mean}}]",
			err: ErrUnknownKind,
		},
		"no agents": {
			doc: "arms: [{kind: constant}]",
			err: ErrMissing,
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseExperimentFile([]byte(c.doc))
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestParseExperimentFileUnknownField(t *testing.T) {
	_, err := ParseExperimentFile([]byte("arms: [{kind: constant, rewrd: 1}]\nagents: [{policy: random}]"))
	assert.Error(t, err)
}

func TestExperimentFileComparison(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(drifting), 0644))

	f, err := LoadExperimentFile(path)
	require.NoError(t, err)

	out := new(bytes.Buffer)
	cmp, err := f.Comparison(out)
	require.NoError(t, err)
	require.Len(t, cmp.Experiments, 4)
	assert.Equal(t, "agent_2", cmp.Experiments[2].Name)

	flags := DefaultFlags()
	f.Apply(flags)
	require.NoError(t, cmp.Run(context.Background(), flags.NumRuns, flags.RunConfig(), nil))
	assert.Contains(t, out.String(), "Run 1: Regret")
	assert.Contains(t, out.String(), "over 2 runs")
}

func TestApplyLogsOnlyOverrides(t *testing.T) {
	logs := new(bytes.Buffer)
	defer slog.SetDefault(slog.Default())
	slog.SetDefault(slog.New(slog.NewJSONHandler(logs, nil)))

	f := &ExperimentFile{Name: "short", Steps: 10}
	flags := DefaultFlags()
	f.Apply(flags)
	assert.Equal(t, 10, flags.Steps)
	assert.Equal(t, DefaultFlags().NumRuns, flags.NumRuns)

	var record map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &record))
	assert.Equal(t, "Experiment file", record["msg"])
	assert.Equal(t, map[string]any{"steps": float64(10)}, record["overrides"])
}
