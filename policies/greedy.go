package policies

import (
	"github.com/zeu5/bandits/core"
	"github.com/zeu5/bandits/quality"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Greedy always picks the arm with the highest estimate, ties going to
// the lowest index
type Greedy struct {
	quality quality.Function
}

var _ core.Policy = &Greedy{}

func NewGreedy(q quality.Function) *Greedy {
	return &Greedy{quality: q}
}

func (g *Greedy) Choice() int {
	return floats.MaxIdx(g.quality.Parameters())
}

func (g *Greedy) Update(arm int, reward float64) {
	g.quality.UpdateParameters(arm, reward)
}

type GreedyConstructor struct {
	quality quality.Constructor
}

var _ core.PolicyConstructor = &GreedyConstructor{}

func NewGreedyConstructor(q quality.Constructor) *GreedyConstructor {
	return &GreedyConstructor{quality: q}
}

func (g *GreedyConstructor) NewPolicy(k int, _ rand.Source) (core.Policy, error) {
	q, err := g.quality.NewFunction(k)
	if err != nil {
		return nil, err
	}
	return NewGreedy(q), nil
}
