package policies

import (
	"github.com/zeu5/bandits/core"
	"golang.org/x/exp/rand"
)

// Random picks an arm uniformly at random and ignores rewards
type Random struct {
	k    int
	rand *rand.Rand
}

var _ core.Policy = &Random{}

func NewRandom(k int, src rand.Source) *Random {
	return &Random{
		k:    k,
		rand: rand.New(src),
	}
}

func (r *Random) Choice() int {
	return r.rand.Intn(r.k)
}

func (r *Random) Update(_ int, _ float64) {}

type RandomConstructor struct{}

var _ core.PolicyConstructor = &RandomConstructor{}

func (r *RandomConstructor) NewPolicy(k int, src rand.Source) (core.Policy, error) {
	if k <= 0 {
		return nil, core.ErrNoArms
	}
	return NewRandom(k, src), nil
}
