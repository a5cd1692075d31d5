package quality

import "math"

// SampleMean keeps the exact running mean of the rewards seen per arm
type SampleMean struct {
	mean     []float64
	nSampled []float64
}

var _ Function = &SampleMean{}

func NewSampleMean(k int, prior []float64) (*SampleMean, error) {
	mean, err := newPrior(k, prior)
	if err != nil {
		return nil, err
	}
	return &SampleMean{
		mean:     mean,
		nSampled: make([]float64, k),
	}, nil
}

func (s *SampleMean) K() int { return len(s.mean) }

func (s *SampleMean) Parameters() []float64 {
	return snapshot(s.mean)
}

func (s *SampleMean) UpdateParameters(arm int, reward float64) {
	s.nSampled[arm]++
	s.mean[arm] += (reward - s.mean[arm]) / s.nSampled[arm]
}

// EMAConst is an exponential moving average that decays an arm only when
// that arm is updated
type EMAConst struct {
	alpha float64
	mean  []float64
}

var _ Function = &EMAConst{}

func NewEMAConst(k int, alpha float64, prior []float64) (*EMAConst, error) {
	if err := checkRate("alpha", alpha); err != nil {
		return nil, err
	}
	mean, err := newPrior(k, prior)
	if err != nil {
		return nil, err
	}
	return &EMAConst{
		alpha: alpha,
		mean:  mean,
	}, nil
}

func (e *EMAConst) K() int { return len(e.mean) }

func (e *EMAConst) Parameters() []float64 {
	return snapshot(e.mean)
}

func (e *EMAConst) UpdateParameters(arm int, reward float64) {
	e.mean[arm] = (1-e.alpha)*e.mean[arm] + e.alpha*reward
}

// EMA is an exponential moving average where every update, to any arm,
// counts as one global step. An arm that was not touched for n steps is
// decayed by (1-alpha)^n at its next update.
type EMA struct {
	alpha      float64
	mean       []float64
	i          int
	lastUpdate []int
}

var _ Function = &EMA{}

func NewEMA(k int, alpha float64, prior []float64) (*EMA, error) {
	if err := checkRate("alpha", alpha); err != nil {
		return nil, err
	}
	mean, err := newPrior(k, prior)
	if err != nil {
		return nil, err
	}
	return &EMA{
		alpha:      alpha,
		mean:       mean,
		lastUpdate: make([]int, k),
	}, nil
}

func (e *EMA) K() int { return len(e.mean) }

func (e *EMA) Parameters() []float64 {
	return snapshot(e.mean)
}

func (e *EMA) UpdateParameters(arm int, reward float64) {
	e.i++
	decay := math.Pow(1-e.alpha, float64(e.i-e.lastUpdate[arm]))
	e.mean[arm] = decay*e.mean[arm] + (1-decay)*reward
	e.lastUpdate[arm] = e.i
}
