package core

import (
	"errors"

	"github.com/zeu5/bandits/rewards"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrNoArms = errors.New("bandit needs at least one arm")
)

// KArmedBandit owns one reward generator per arm. Arm identity is the
// index of its generator and is fixed for the lifetime of the bandit.
type KArmedBandit struct {
	arms []rewards.Generator
}

func NewKArmedBandit(arms ...rewards.Generator) (*KArmedBandit, error) {
	if len(arms) == 0 {
		return nil, ErrNoArms
	}
	return &KArmedBandit{
		arms: append([]rewards.Generator(nil), arms...),
	}, nil
}

func (b *KArmedBandit) Len() int {
	return len(b.arms)
}

// Step advances every arm by one discrete unit, in index order
func (b *KArmedBandit) Step() {
	for _, arm := range b.arms {
		arm.Step()
	}
}

func (b *KArmedBandit) QueryArm(i int) float64 {
	return b.arms[i].Reward()
}

func (b *KArmedBandit) QueryArmAt(i int, t float64) (float64, error) {
	return b.arms[i].RewardAt(t)
}

// Value returns the true value of arm i, without noise. Arms that do not
// separate value from noise are taken at their reward.
func (b *KArmedBandit) Value(i int) float64 {
	if v, ok := b.arms[i].(rewards.Valuer); ok {
		return v.Value()
	}
	return b.arms[i].Reward()
}

func (b *KArmedBandit) ValueAt(i int, t float64) (float64, error) {
	if v, ok := b.arms[i].(rewards.Valuer); ok {
		return v.ValueAt(t)
	}
	return b.arms[i].RewardAt(t)
}

// OptimalArm returns the arm with the greatest true value at the current
// step. Ties go to the lowest index.
//
// Used for regret accounting only, policies must not see it.
func (b *KArmedBandit) OptimalArm() int {
	values := make([]float64, len(b.arms))
	for i := range b.arms {
		values[i] = b.Value(i)
	}
	return floats.MaxIdx(values)
}

func (b *KArmedBandit) OptimalArmAt(t float64) (int, error) {
	values := make([]float64, len(b.arms))
	for i := range b.arms {
		v, err := b.ValueAt(i, t)
		if err != nil {
			return -1, err
		}
		values[i] = v
	}
	return floats.MaxIdx(values), nil
}
