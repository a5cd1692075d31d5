package rewards

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultPeriod is the number of samples drawn per regeneration block
const DefaultPeriod = 1000

// NormalNoise produces i.i.d. normal samples. Samples are drawn in blocks
// of period length and the block is redrawn when the cursor wraps around.
//
// The process is periodic in the block length, so RewardAt is not supported.
type NormalNoise struct {
	dist    distuv.Normal
	period  int
	rewards []float64
	i       int
}

var _ Generator = &NormalNoise{}

func NewNormalNoise(mean, std float64, period int, src rand.Source) (*NormalNoise, error) {
	if period <= 0 {
		return nil, fmt.Errorf("normal noise period %d: %w", period, ErrInvalidPeriod)
	}
	if std < 0 {
		return nil, fmt.Errorf("normal noise std %v: %w", std, ErrInvalidStd)
	}
	n := &NormalNoise{
		dist:    distuv.Normal{Mu: mean, Sigma: std, Src: src},
		period:  period,
		rewards: make([]float64, period),
	}
	n.regenerate()
	return n, nil
}

func (n *NormalNoise) regenerate() {
	for j := range n.rewards {
		n.rewards[j] = n.dist.Rand()
	}
}

func (n *NormalNoise) Step() {
	n.i++
	if n.i == n.period {
		n.regenerate()
		n.i = 0
	}
}

func (n *NormalNoise) Reward() float64 {
	return n.rewards[n.i]
}

func (n *NormalNoise) RewardAt(_ float64) (float64, error) {
	return 0, ErrNotSupported
}

// BrownianMotion is a random walk with normal increments, generated in
// blocks of period length. Every block starts at the last value of the
// previous block so the walk stays continuous across regenerations.
type BrownianMotion struct {
	dist    distuv.Normal
	period  int
	rewards []float64
	i       int
}

var _ Generator = &BrownianMotion{}

func NewBrownianMotion(std float64, period int, src rand.Source) (*BrownianMotion, error) {
	if period <= 0 {
		return nil, fmt.Errorf("brownian motion period %d: %w", period, ErrInvalidPeriod)
	}
	if std < 0 {
		return nil, fmt.Errorf("brownian motion std %v: %w", std, ErrInvalidStd)
	}
	b := &BrownianMotion{
		dist:    distuv.Normal{Mu: 0, Sigma: std, Src: src},
		period:  period,
		rewards: make([]float64, period),
	}
	b.regenerate(0)
	return b, nil
}

// regenerate fills a block of the walk whose first entry is start, so
// consecutive blocks join without a jump.
func (b *BrownianMotion) regenerate(start float64) {
	increments := make([]float64, b.period)
	increments[0] = start
	for j := 1; j < b.period; j++ {
		increments[j] = b.dist.Rand()
	}
	floats.CumSum(b.rewards, increments)
}

func (b *BrownianMotion) Step() {
	b.i++
	if b.i == b.period {
		b.regenerate(b.rewards[b.period-1])
		b.i = 0
	}
}

func (b *BrownianMotion) Reward() float64 {
	return b.rewards[b.i]
}

func (b *BrownianMotion) RewardAt(_ float64) (float64, error) {
	return 0, ErrNotSupported
}
