package policies

import (
	"math"

	"github.com/zeu5/bandits/core"
	"github.com/zeu5/bandits/quality"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SoftmaxStochastic samples an arm from the softmax of the log-preferences
// of its estimator
type SoftmaxStochastic struct {
	quality quality.LogPreferences
	rand    rand.Source
}

var _ core.Policy = &SoftmaxStochastic{}

func NewSoftmaxStochastic(q quality.LogPreferences, src rand.Source) *SoftmaxStochastic {
	return &SoftmaxStochastic{
		quality: q,
		rand:    src,
	}
}

func (s *SoftmaxStochastic) Choice() int {
	weights := Softmax(s.quality.LogPreferences())
	// using the sampleuv library to sample based on the weights
	i, ok := sampleuv.NewWeighted(weights, s.rand).Take()
	if !ok {
		return floats.MaxIdx(weights)
	}
	return i
}

func (s *SoftmaxStochastic) Update(arm int, reward float64) {
	s.quality.UpdateParameters(arm, reward)
}

// Softmax normalizes preferences into probabilities. The largest value is
// subtracted first so large preferences do not overflow.
func Softmax(prefs []float64) []float64 {
	out := make([]float64, len(prefs))
	largest := floats.Max(prefs)
	for i, p := range prefs {
		out[i] = math.Exp(p - largest)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}

type SoftmaxStochasticConstructor struct {
	quality quality.LogPreferencesConstructor
}

var _ core.PolicyConstructor = &SoftmaxStochasticConstructor{}

func NewSoftmaxStochasticConstructor(q quality.LogPreferencesConstructor) *SoftmaxStochasticConstructor {
	return &SoftmaxStochasticConstructor{quality: q}
}

func (s *SoftmaxStochasticConstructor) NewPolicy(k int, src rand.Source) (core.Policy, error) {
	q, err := s.quality.NewLogPreferences(k)
	if err != nil {
		return nil, err
	}
	return NewSoftmaxStochastic(q, src), nil
}
