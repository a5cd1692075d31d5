package common

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zeu5/bandits/core"
	"github.com/zeu5/bandits/policies"
	"github.com/zeu5/bandits/quality"
	"github.com/zeu5/bandits/rewards"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind = errors.New("unknown kind")
	ErrMissing     = errors.New("missing field")
)

// ExperimentFile describes a set of arms and the agents playing them
//
//	name: drifting
//	steps: 2000
//	arms:
//	  - kind: value_noise
//	    value: {kind: brownian, std: 0.01}
//	    noise: {kind: normal, std: 1}
//	agents:
//	  - name: ucb
//	    policy: greedy
//	    quality: {kind: ucb, c: 2, quality: {kind: ema, alpha: 0.1}}
type ExperimentFile struct {
	Name   string          `yaml:"name"`
	Runs   int             `yaml:"runs"`
	Steps  int             `yaml:"steps"`
	Seed   uint64          `yaml:"seed"`
	Arms   []GeneratorSpec `yaml:"arms"`
	Agents []AgentSpec     `yaml:"agents"`
}

type GeneratorSpec struct {
	Kind string `yaml:"kind"`

	// constant
	Reward float64 `yaml:"reward"`
	// normal, brownian
	Mean   float64 `yaml:"mean"`
	Std    float64 `yaml:"std"`
	Period int     `yaml:"period"`
	// sum
	Left  *GeneratorSpec `yaml:"left"`
	Right *GeneratorSpec `yaml:"right"`
	// value_noise
	Value *GeneratorSpec `yaml:"value"`
	Noise *GeneratorSpec `yaml:"noise"`
}

type QualitySpec struct {
	Kind  string    `yaml:"kind"`
	Alpha float64   `yaml:"alpha"`
	C     float64   `yaml:"c"`
	Prior []float64 `yaml:"prior"`
	// wrapped estimator of ucb
	Quality *QualitySpec `yaml:"quality"`
}

type AgentSpec struct {
	Name    string       `yaml:"name"`
	Policy  string       `yaml:"policy"`
	Epsilon float64      `yaml:"epsilon"`
	Quality *QualitySpec `yaml:"quality"`
}

func LoadExperimentFile(path string) (*ExperimentFile, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading experiment file: %w", err)
	}
	return ParseExperimentFile(bs)
}

func ParseExperimentFile(bs []byte) (*ExperimentFile, error) {
	f := &ExperimentFile{}
	dec := yaml.NewDecoder(bytes.NewReader(bs))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("error parsing experiment file: %w", err)
	}
	if len(f.Arms) == 0 {
		return nil, fmt.Errorf("arms: %w", core.ErrNoArms)
	}
	if len(f.Agents) == 0 {
		return nil, fmt.Errorf("agents: %w", ErrMissing)
	}
	// Validate every component once up front
	if _, err := f.NewEnvironment(0, rand.NewSource(1)); err != nil {
		return nil, err
	}
	for i := range f.Agents {
		pc, err := f.Agents[i].PolicyConstructor()
		if err != nil {
			return nil, err
		}
		if _, err := pc.NewPolicy(len(f.Arms), rand.NewSource(1)); err != nil {
			return nil, fmt.Errorf("agent %s: %w", f.Agents[i].Name, err)
		}
	}
	return f, nil
}

// Build creates the generator described by g, drawing randomness
// from src
func (g *GeneratorSpec) Build(src rand.Source) (rewards.Generator, error) {
	period := g.Period
	if period == 0 {
		period = rewards.DefaultPeriod
	}
	switch g.Kind {
	case "constant":
		return rewards.NewConstant(g.Reward), nil
	case "normal":
		return rewards.NewNormalNoise(g.Mean, g.Std, period, src)
	case "brownian":
		return rewards.NewBrownianMotion(g.Std, period, src)
	case "sum":
		left, right, err := buildPair(g.Left, g.Right, "left", "right", src)
		if err != nil {
			return nil, err
		}
		return rewards.NewSum(left, right), nil
	case "value_noise":
		value, noise, err := buildPair(g.Value, g.Noise, "value", "noise", src)
		if err != nil {
			return nil, err
		}
		return rewards.NewValueNoise(value, noise), nil
	default:
		return nil, fmt.Errorf("generator %q: %w", g.Kind, ErrUnknownKind)
	}
}

func buildPair(a, b *GeneratorSpec, aName, bName string, src rand.Source) (rewards.Generator, rewards.Generator, error) {
	if a == nil {
		return nil, nil, fmt.Errorf("%s: %w", aName, ErrMissing)
	}
	if b == nil {
		return nil, nil, fmt.Errorf("%s: %w", bName, ErrMissing)
	}
	left, err := a.Build(src)
	if err != nil {
		return nil, nil, err
	}
	right, err := b.Build(src)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func (q *QualitySpec) Constructor() (quality.Constructor, error) {
	switch q.Kind {
	case "mean":
		return &quality.SampleMeanConstructor{Prior: q.Prior}, nil
	case "ema_const":
		return &quality.EMAConstConstructor{Alpha: q.Alpha, Prior: q.Prior}, nil
	case "ema":
		return &quality.EMAConstructor{Alpha: q.Alpha, Prior: q.Prior}, nil
	case "gradient":
		return &quality.GradientPreferenceConstructor{Alpha: q.Alpha, Prior: q.Prior}, nil
	case "ucb":
		if q.Quality == nil {
			return nil, fmt.Errorf("ucb quality: %w", ErrMissing)
		}
		inner, err := q.Quality.Constructor()
		if err != nil {
			return nil, err
		}
		return &quality.UCBConstructor{Quality: inner, C: q.C}, nil
	default:
		return nil, fmt.Errorf("quality %q: %w", q.Kind, ErrUnknownKind)
	}
}

func (a *AgentSpec) PolicyConstructor() (core.PolicyConstructor, error) {
	if a.Policy == "random" {
		return &policies.RandomConstructor{}, nil
	}
	if a.Quality == nil {
		return nil, fmt.Errorf("agent %s quality: %w", a.Name, ErrMissing)
	}
	q, err := a.Quality.Constructor()
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", a.Name, err)
	}
	switch a.Policy {
	case "greedy":
		return policies.NewGreedyConstructor(q), nil
	case "epsilon":
		return policies.NewEpsilonGreedyConstructor(a.Epsilon, q), nil
	case "softmax":
		lp, ok := q.(quality.LogPreferencesConstructor)
		if !ok {
			return nil, fmt.Errorf("agent %s: softmax needs log-preferences, got %q: %w", a.Name, a.Quality.Kind, ErrUnknownKind)
		}
		return policies.NewSoftmaxStochasticConstructor(lp), nil
	default:
		return nil, fmt.Errorf("agent %s policy %q: %w", a.Name, a.Policy, ErrUnknownKind)
	}
}

var _ core.EnvironmentConstructor = &ExperimentFile{}

func (f *ExperimentFile) NewEnvironment(_ int, src rand.Source) (*core.KArmedBandit, error) {
	arms := make([]rewards.Generator, len(f.Arms))
	for i := range f.Arms {
		arm, err := f.Arms[i].Build(src)
		if err != nil {
			return nil, fmt.Errorf("arm %d: %w", i, err)
		}
		arms[i] = arm
	}
	return core.NewKArmedBandit(arms...)
}

// Comparison assembles a comparison of all agents of the file. Agents
// without a name are named after their position.
func (f *ExperimentFile) Comparison(writer io.Writer) (*core.Comparison, error) {
	cmp := core.NewComparison()
	AddAnalyses(cmp, writer)
	for i := range f.Agents {
		agent := &f.Agents[i]
		pc, err := agent.PolicyConstructor()
		if err != nil {
			return nil, err
		}
		name := agent.Name
		if name == "" {
			name = fmt.Sprintf("agent_%d", i)
		}
		cmp.AddExperiment(&core.Experiment{
			Name:        name,
			Environment: f,
			Policy:      pc,
		})
	}
	return cmp, nil
}

// Apply overrides run flags with the values set in the file and logs the
// overridden values
func (f *ExperimentFile) Apply(flags *Flags) {
	overrides := make([]any, 0)
	if f.Runs > 0 {
		flags.NumRuns = f.Runs
		overrides = append(overrides, "runs", f.Runs)
	}
	if f.Steps > 0 {
		flags.Steps = f.Steps
		overrides = append(overrides, "steps", f.Steps)
	}
	if f.Seed != 0 {
		flags.Seed = f.Seed
		overrides = append(overrides, "seed", f.Seed)
	}
	slog.Info("Experiment file",
		"name", f.Name,
		"arms", len(f.Arms),
		"agents", len(f.Agents),
		slog.Group("overrides", overrides...),
	)
}
