package core

import (
	"context"

	"golang.org/x/exp/rand"
)

// RunContext describes one run of one experiment
type RunContext struct {
	Context    context.Context
	Experiment string
	Run        int
	Steps      int

	Trace *Trace
}

func NewRunContext(ctx context.Context, experiment string, run int) *RunContext {
	return &RunContext{
		Context:    ctx,
		Experiment: experiment,
		Run:        run,
		Trace:      NewTrace(),
	}
}

type EnvironmentConstructor interface {
	// NewEnvironment creates a fresh bandit for the given run. All
	// randomness of the arms is drawn from src.
	NewEnvironment(int, rand.Source) (*KArmedBandit, error)
}

// EnvironmentFunc adapts a function to an EnvironmentConstructor
type EnvironmentFunc func(int, rand.Source) (*KArmedBandit, error)

func (f EnvironmentFunc) NewEnvironment(run int, src rand.Source) (*KArmedBandit, error) {
	return f(run, src)
}
