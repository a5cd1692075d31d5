package quality

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GradientPreference learns unnormalized log-preferences H by stochastic
// gradient ascent on expected reward, with the running average reward as
// the baseline. The parameters are meant to be passed through a softmax.
type GradientPreference struct {
	alpha    float64
	h        []float64
	baseline float64
	n        int
}

var _ LogPreferences = &GradientPreference{}

func NewGradientPreference(k int, alpha float64, prior []float64) (*GradientPreference, error) {
	if err := checkRate("alpha", alpha); err != nil {
		return nil, err
	}
	h, err := newPrior(k, prior)
	if err != nil {
		return nil, err
	}
	return &GradientPreference{
		alpha: alpha,
		h:     h,
	}, nil
}

func (g *GradientPreference) K() int { return len(g.h) }

func (g *GradientPreference) Parameters() []float64 {
	return snapshot(g.h)
}

func (g *GradientPreference) LogPreferences() []float64 {
	return snapshot(g.h)
}

// Baseline is the average of all rewards seen so far
func (g *GradientPreference) Baseline() float64 {
	return g.baseline
}

func (g *GradientPreference) UpdateParameters(arm int, reward float64) {
	pi := g.probabilities()
	diff := reward - g.baseline
	for b := range g.h {
		if b == arm {
			g.h[b] += g.alpha * diff * (1 - pi[b])
		} else {
			g.h[b] -= g.alpha * diff * pi[b]
		}
	}
	g.n++
	g.baseline += (reward - g.baseline) / float64(g.n)
}

func (g *GradientPreference) probabilities() []float64 {
	largest := floats.Max(g.h)
	pi := make([]float64, len(g.h))
	for i, v := range g.h {
		pi[i] = math.Exp(v - largest)
	}
	floats.Scale(1/floats.Sum(pi), pi)
	return pi
}
