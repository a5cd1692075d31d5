package policies

import (
	"errors"
	"fmt"

	"github.com/zeu5/bandits/core"
	"github.com/zeu5/bandits/quality"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrInvalidEpsilon = errors.New("epsilon not in [0, 1]")
)

// EpsilonGreedy explores a uniformly random arm with probability epsilon
// and otherwise behaves like Greedy
type EpsilonGreedy struct {
	epsilon float64
	quality quality.Function
	rand    *rand.Rand
}

var _ core.Policy = &EpsilonGreedy{}

func NewEpsilonGreedy(epsilon float64, q quality.Function, src rand.Source) (*EpsilonGreedy, error) {
	if !(epsilon >= 0 && epsilon <= 1) {
		return nil, fmt.Errorf("epsilon = %v: %w", epsilon, ErrInvalidEpsilon)
	}
	return &EpsilonGreedy{
		epsilon: epsilon,
		quality: q,
		rand:    rand.New(src),
	}, nil
}

func (e *EpsilonGreedy) Choice() int {
	if e.rand.Float64() < e.epsilon {
		return e.rand.Intn(e.quality.K())
	}
	return floats.MaxIdx(e.quality.Parameters())
}

func (e *EpsilonGreedy) Update(arm int, reward float64) {
	e.quality.UpdateParameters(arm, reward)
}

type EpsilonGreedyConstructor struct {
	epsilon float64
	quality quality.Constructor
}

var _ core.PolicyConstructor = &EpsilonGreedyConstructor{}

func NewEpsilonGreedyConstructor(epsilon float64, q quality.Constructor) *EpsilonGreedyConstructor {
	return &EpsilonGreedyConstructor{
		epsilon: epsilon,
		quality: q,
	}
}

func (e *EpsilonGreedyConstructor) NewPolicy(k int, src rand.Source) (core.Policy, error) {
	q, err := e.quality.NewFunction(k)
	if err != nil {
		return nil, err
	}
	return NewEpsilonGreedy(e.epsilon, q, src)
}
