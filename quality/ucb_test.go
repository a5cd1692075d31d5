package quality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFunction counts the updates forwarded to it
type recordingFunction struct {
	*SampleMean
	updates int
}

func (r *recordingFunction) UpdateParameters(arm int, reward float64) {
	r.updates++
	r.SampleMean.UpdateParameters(arm, reward)
}

func newUCB(t *testing.T, k int, c float64) (*UCB, *recordingFunction) {
	sm, err := NewSampleMean(k, nil)
	require.NoError(t, err)
	inner := &recordingFunction{SampleMean: sm}
	u, err := NewUCB(inner, c)
	require.NoError(t, err)
	return u, inner
}

func TestUCBValidation(t *testing.T) {
	sm, err := NewSampleMean(2, nil)
	require.NoError(t, err)
	_, err = NewUCB(sm, -1)
	assert.ErrorIs(t, err, ErrInvalidScale)
}

func TestUCBInfiniteBeforeUpdates(t *testing.T) {
	u, _ := newUCB(t, 3, 2)
	assert.Equal(t, 3, u.K())
	for _, v := range u.Parameters() {
		assert.True(t, math.IsInf(v, 1))
	}
}

func TestUCBUnvisitedArmsStayInfinite(t *testing.T) {
	u, _ := newUCB(t, 3, 1)
	u.UpdateParameters(1, 2)
	u.UpdateParameters(1, 4)

	params := u.Parameters()
	assert.True(t, math.IsInf(params[0], 1))
	assert.True(t, math.IsInf(params[2], 1))
	assert.InDelta(t, 3+math.Sqrt(math.Log(2)/2), params[1], 1e-12)
}

func TestUCBFiniteAfterAllArmsUpdated(t *testing.T) {
	u, inner := newUCB(t, 3, 0.5)
	rewards := []float64{1, 0, 2}
	for round := 0; round < 3; round++ {
		for arm, r := range rewards {
			u.UpdateParameters(arm, r)
		}
	}
	assert.Equal(t, 9, inner.updates, "every update is delegated")

	params := u.Parameters()
	means := inner.Parameters()
	bonus := 0.5 * math.Sqrt(math.Log(9)/3)
	for arm, v := range params {
		assert.False(t, math.IsInf(v, 0))
		assert.InDelta(t, means[arm]+bonus, v, 1e-12)
	}
}

func TestUCBSingleUpdateHasZeroBonus(t *testing.T) {
	u, _ := newUCB(t, 1, 3)
	u.UpdateParameters(0, 1.5)
	// ln(1) = 0
	assert.Equal(t, []float64{1.5}, u.Parameters())
}

func TestUCBZeroScale(t *testing.T) {
	u, _ := newUCB(t, 2, 0)
	u.UpdateParameters(0, 1)
	params := u.Parameters()
	assert.Equal(t, 1.0, params[0])
	assert.True(t, math.IsInf(params[1], 1))
}

func TestUCBDoesNotMutateInner(t *testing.T) {
	u, inner := newUCB(t, 2, 1)
	u.UpdateParameters(0, 1)
	u.UpdateParameters(1, 3)
	_ = u.Parameters()
	assert.Equal(t, []float64{1, 3}, inner.Parameters())
}

func TestUCBOverEMA(t *testing.T) {
	e, err := NewEMA(2, 0.5, nil)
	require.NoError(t, err)
	u, err := NewUCB(e, 1)
	require.NoError(t, err)

	u.UpdateParameters(0, 2)
	u.UpdateParameters(1, 4)
	bonus := math.Sqrt(math.Log(2))
	assert.InDelta(t, 1+bonus, u.Parameters()[0], 1e-12)
	assert.InDelta(t, 3+bonus, u.Parameters()[1], 1e-12)
}

func TestUCBPanicsOnUnvisitedArmAfterKUpdates(t *testing.T) {
	u, _ := newUCB(t, 2, 1)
	u.UpdateParameters(0, 1)
	u.UpdateParameters(0, 1)
	assert.NotPanics(t, func() { u.Parameters() }, "k updates are allowed on one arm")

	u.UpdateParameters(0, 1)
	assert.Panics(t, func() { u.Parameters() })
}
