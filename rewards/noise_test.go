package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

func TestNoiseValidation(t *testing.T) {
	_, err := NewNormalNoise(0, 1, 0, rand.NewSource(1))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, err = NewNormalNoise(0, -1, 10, rand.NewSource(1))
	assert.ErrorIs(t, err, ErrInvalidStd)
	_, err = NewBrownianMotion(1, -3, rand.NewSource(1))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, err = NewBrownianMotion(-1, 3, rand.NewSource(1))
	assert.ErrorIs(t, err, ErrInvalidStd)
}

func TestNormalNoiseWraparound(t *testing.T) {
	for _, period := range []int{1, 2, 5, 64} {
		n, err := NewNormalNoise(0, 1, period, rand.NewSource(3))
		require.NoError(t, err)

		first := append([]float64(nil), n.rewards...)
		for i := 0; i < period; i++ {
			assert.Equal(t, i, n.i)
			assert.Equal(t, first[i], n.Reward())
			n.Step()
		}
		assert.Equal(t, 0, n.i)
		assert.NotEqual(t, first, n.rewards, "a fresh block is drawn on wraparound")
	}
}

func TestNormalNoiseRewardIsStable(t *testing.T) {
	n, err := NewNormalNoise(0, 1, 10, rand.NewSource(5))
	require.NoError(t, err)
	r := n.Reward()
	assert.Equal(t, r, n.Reward())
}

func TestNormalNoiseMoments(t *testing.T) {
	n, err := NewNormalNoise(2, 0.5, 100, rand.NewSource(11))
	require.NoError(t, err)
	samples := make([]float64, 20000)
	for i := range samples {
		samples[i] = n.Reward()
		n.Step()
	}
	mean, std := stat.MeanStdDev(samples, nil)
	assert.InDelta(t, 2, mean, 0.02)
	assert.InDelta(t, 0.5, std, 0.02)
}

func TestNormalNoiseNotSupported(t *testing.T) {
	n, err := NewNormalNoise(0, 1, 10, rand.NewSource(1))
	require.NoError(t, err)
	_, err = n.RewardAt(0.5)
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestBrownianMotionContinuity(t *testing.T) {
	for _, period := range []int{1, 2, 3, 50} {
		b, err := NewBrownianMotion(1, period, rand.NewSource(9))
		require.NoError(t, err)
		assert.Equal(t, 0.0, b.Reward(), "walk starts at zero")

		for wrap := 0; wrap < 5; wrap++ {
			last := b.rewards[period-1]
			for i := 0; i < period; i++ {
				b.Step()
			}
			assert.Equal(t, 0, b.i)
			assert.Equal(t, last, b.Reward(), "period %d wrap %d", period, wrap)
		}
	}
}

func TestBrownianMotionStepsWithinBlock(t *testing.T) {
	b, err := NewBrownianMotion(0, 10, rand.NewSource(1))
	require.NoError(t, err)
	// zero variance walk never moves
	for i := 0; i < 35; i++ {
		assert.Equal(t, 0.0, b.Reward())
		b.Step()
	}
	_, err = b.RewardAt(3)
	assert.ErrorIs(t, err, ErrNotSupported)
}
