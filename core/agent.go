package core

import "golang.org/x/exp/rand"

// Policy picks an arm each round and learns from the observed reward
type Policy interface {
	Choice() int
	Update(arm int, reward float64)
}

type PolicyConstructor interface {
	// NewPolicy creates a fresh policy for a bandit with the given number
	// of arms
	NewPolicy(int, rand.Source) (Policy, error)
}
