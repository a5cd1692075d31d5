package quality

import (
	"fmt"
	"math"
)

// UCB adds an upper confidence bonus to the estimate of the wrapped
// function:
//
//	score[a] = quality[a] + c * sqrt(ln(total) / n[a])
//
// Every score is +Inf before the first update, and an arm that was never
// updated has an infinite bonus. Parameters panics when an arm is still
// unvisited after more than k updates.
type UCB struct {
	quality Function
	c       float64

	totalUpdates int
	nUpdates     []int
}

var _ Function = &UCB{}

// NewUCB takes ownership of quality. All updates must go through the UCB.
func NewUCB(quality Function, c float64) (*UCB, error) {
	if c < 0 || math.IsNaN(c) {
		return nil, fmt.Errorf("c = %v: %w", c, ErrInvalidScale)
	}
	return &UCB{
		quality:  quality,
		c:        c,
		nUpdates: make([]int, quality.K()),
	}, nil
}

func (u *UCB) K() int { return len(u.nUpdates) }

func (u *UCB) Parameters() []float64 {
	k := u.K()
	conf := make([]float64, k)
	for i := range conf {
		conf[i] = math.Inf(1)
	}
	if u.totalUpdates == 0 {
		return conf
	}
	logTotal := math.Log(float64(u.totalUpdates))
	for i, n := range u.nUpdates {
		if n == 0 {
			// a caller choosing by score plays every unvisited arm first
			if u.totalUpdates > k {
				panic(fmt.Sprintf("ucb: arm %d never updated after %d updates", i, u.totalUpdates))
			}
			continue
		}
		conf[i] = math.Sqrt(logTotal / float64(n))
	}

	q := u.quality.Parameters()
	for i := range q {
		if math.IsInf(conf[i], 1) {
			q[i] = math.Inf(1)
			continue
		}
		q[i] += u.c * conf[i]
	}
	return q
}

func (u *UCB) UpdateParameters(arm int, reward float64) {
	u.totalUpdates++
	u.nUpdates[arm]++
	u.quality.UpdateParameters(arm, reward)
}
