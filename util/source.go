package util

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewSource returns a seeded source. A zero seed is replaced by the
// current time.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = ClockSeed()
	}
	return rand.NewSource(seed)
}

// ClockSeed returns a non-zero seed taken from the current time
func ClockSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = 1
	}
	return seed
}

// DeriveSeed mixes a base seed with stream identifiers (splitmix64) so that
// independent components get uncorrelated seeds. A zero base stays zero.
func DeriveSeed(base uint64, streams ...int) uint64 {
	if base == 0 {
		return 0
	}
	z := base
	for _, s := range streams {
		z += 0x9e3779b97f4a7c15 * uint64(s+1)
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		z ^= z >> 31
	}
	if z == 0 {
		z = 1
	}
	return z
}
