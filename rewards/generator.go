package rewards

import (
	"errors"
	"fmt"
)

var (
	ErrNotSupported  = errors.New("continuous time query not supported")
	ErrInvalidPeriod = errors.New("regeneration period must be positive")
	ErrInvalidStd    = errors.New("standard deviation must be non-negative")
)

// Generator is a stochastic reward source advanced in discrete steps
type Generator interface {
	// Step advances the process by exactly one discrete unit
	Step()
	// Reward returns the reward at the current discrete time
	Reward() float64
	// RewardAt returns the reward at continuous time t without mutating state
	RewardAt(float64) (float64, error)
}

// Valuer is implemented by generators that separate the true value of
// an arm from the noise added to it
type Valuer interface {
	Value() float64
	ValueAt(float64) (float64, error)
}

type Constant struct {
	reward float64
}

var _ Generator = &Constant{}

func NewConstant(reward float64) *Constant {
	return &Constant{reward: reward}
}

func (c *Constant) Step() {}

func (c *Constant) Reward() float64 {
	return c.reward
}

func (c *Constant) RewardAt(_ float64) (float64, error) {
	return c.reward, nil
}

// Sum owns two generators and advances them in lockstep
type Sum struct {
	left  Generator
	right Generator
}

var _ Generator = &Sum{}

func NewSum(left, right Generator) *Sum {
	return &Sum{
		left:  left,
		right: right,
	}
}

// Add composes two generators of any kind into a Sum
func Add(left, right Generator) Generator {
	return NewSum(left, right)
}

func (s *Sum) Step() {
	s.left.Step()
	s.right.Step()
}

func (s *Sum) Reward() float64 {
	return s.left.Reward() + s.right.Reward()
}

func (s *Sum) RewardAt(t float64) (float64, error) {
	l, err := s.left.RewardAt(t)
	if err != nil {
		return 0, err
	}
	r, err := s.right.RewardAt(t)
	if err != nil {
		return 0, err
	}
	return l + r, nil
}

// ValueNoise splits an observed reward into a true value component and a
// noise component. The observed reward is their Sum.
type ValueNoise struct {
	value  Generator
	noise  Generator
	reward *Sum
}

var _ Generator = &ValueNoise{}
var _ Valuer = &ValueNoise{}

func NewValueNoise(value, noise Generator) *ValueNoise {
	return &ValueNoise{
		value:  value,
		noise:  noise,
		reward: NewSum(value, noise),
	}
}

// Step only goes through the composite so each child advances once
func (v *ValueNoise) Step() {
	v.reward.Step()
}

func (v *ValueNoise) Reward() float64 {
	r := v.reward.Reward()
	if v.value.Reward()+v.noise.Reward() != r {
		panic(fmt.Sprintf("value noise mismatch: %v + %v != %v", v.value.Reward(), v.noise.Reward(), r))
	}
	return r
}

func (v *ValueNoise) RewardAt(t float64) (float64, error) {
	val, err := v.value.RewardAt(t)
	if err != nil {
		return 0, err
	}
	noise, err := v.noise.RewardAt(t)
	if err != nil {
		return 0, err
	}
	r, err := v.reward.RewardAt(t)
	if err != nil {
		return 0, err
	}
	if val+noise != r {
		panic(fmt.Sprintf("value noise mismatch at %v: %v + %v != %v", t, val, noise, r))
	}
	return r, nil
}

func (v *ValueNoise) Value() float64 {
	return v.value.Reward()
}

func (v *ValueNoise) ValueAt(t float64) (float64, error) {
	return v.value.RewardAt(t)
}

func (v *ValueNoise) Noise() float64 {
	return v.noise.Reward()
}
