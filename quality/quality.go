// Package quality implements per-arm quality estimators for bandit policies.
//
// Parameters always returns a snapshot: the slice is owned by the caller
// and is never mutated by later updates.
package quality

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArms  = errors.New("number of arms must be positive")
	ErrPriorLength  = errors.New("prior length does not match number of arms")
	ErrInvalidRate  = errors.New("rate not in [0, 1]")
	ErrInvalidScale = errors.New("confidence scale must be non-negative")
)

// Function estimates the quality of each of K arms from observed rewards
type Function interface {
	K() int
	Parameters() []float64
	UpdateParameters(arm int, reward float64)
}

// LogPreferences is implemented by estimators whose parameters are
// unnormalized log-preferences, suitable for softmax selection
type LogPreferences interface {
	Function
	LogPreferences() []float64
}

// newPrior validates the prior and returns a copy to be used as the
// initial estimate. A nil prior is all zeros.
func newPrior(k int, prior []float64) ([]float64, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k = %d: %w", k, ErrInvalidArms)
	}
	out := make([]float64, k)
	if prior == nil {
		return out, nil
	}
	if len(prior) != k {
		return nil, fmt.Errorf("prior of length %d for %d arms: %w", len(prior), k, ErrPriorLength)
	}
	copy(out, prior)
	return out, nil
}

func checkRate(name string, rate float64) error {
	if !(rate >= 0 && rate <= 1) {
		return fmt.Errorf("%s = %v: %w", name, rate, ErrInvalidRate)
	}
	return nil
}

func snapshot(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
