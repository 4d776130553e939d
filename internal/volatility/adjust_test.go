package volatility_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Giri-Aayush/1inch-lop/internal/core"
	"github.com/Giri-Aayush/1inch-lop/internal/volatility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildConfig(baseline, current uint64, conservative bool) volatility.Config {
	return volatility.Build(baseline, current, 5.0, 0.1, conservative, time.Now())
}

func TestAdjust_LowRegimeAtBaseline(t *testing.T) {
	// current == baseline sits in the low regime but the boost is zero.
	res, err := volatility.Adjust(1.0, buildConfig(300, 300, false))
	require.NoError(t, err)
	assert.Equal(t, 100, res.Factor)
	assert.Equal(t, 1.0, res.AdjustedAmount)
}

func TestAdjust_LowRegimeBoost(t *testing.T) {
	// boost = floor((300-150)*50/300) = 25
	res, err := volatility.Adjust(1.0, buildConfig(300, 150, false))
	require.NoError(t, err)
	assert.Equal(t, 125, res.Factor)
	assert.Equal(t, 1.25, res.AdjustedAmount)
}

func TestAdjust_LowRegimeBoostClamped(t *testing.T) {
	// current = 0: raw boost is 50, the clamp ceiling.
	res, err := volatility.Adjust(1.0, buildConfig(300, 0, false))
	require.NoError(t, err)
	assert.Equal(t, 150, res.Factor)
}

func TestAdjust_HighRegimeReductionClamped(t *testing.T) {
	// threshold = 600, so 700 is the high regime.
	// reduction = floor((700-300)*50/300) = 66, clamped to 50.
	res, err := volatility.Adjust(1.0, buildConfig(300, 700, false))
	require.NoError(t, err)
	assert.Equal(t, 50, res.Factor)
	assert.Equal(t, 0.5, res.AdjustedAmount)
}

func TestAdjust_HighRegimeAlwaysAtFloor(t *testing.T) {
	// Entering the high regime means current > 2x baseline, which already
	// puts the raw reduction above 50 before the clamp. The factor is
	// therefore pinned at 50 everywhere in this regime.
	for _, current := range []uint64{601, 700, 1200, 10000} {
		res, err := volatility.Adjust(1.0, buildConfig(300, current, false))
		require.NoError(t, err)
		assert.Equal(t, 50, res.Factor, "current=%d", current)
	}
}

func TestAdjust_IntegerDivisionSteps(t *testing.T) {
	// floor semantics: (300-100)*50/300 = 10000/300 = 33 (not 33.33).
	res, err := volatility.Adjust(1.0, buildConfig(300, 100, false))
	require.NoError(t, err)
	assert.Equal(t, 133, res.Factor)
}

func TestAdjust_ConservativeMode(t *testing.T) {
	// Normal regime: baseline < current <= threshold.
	res, err := volatility.Adjust(1.0, buildConfig(300, 350, true))
	require.NoError(t, err)
	assert.Equal(t, 90, res.Factor)

	res, err = volatility.Adjust(1.0, buildConfig(300, 350, false))
	require.NoError(t, err)
	assert.Equal(t, 100, res.Factor)
}

func TestAdjust_CappedAtMax(t *testing.T) {
	// Low regime boost on a large amount pushes past the 5.0 max.
	res, err := volatility.Adjust(4.5, buildConfig(300, 150, false))
	require.NoError(t, err)
	assert.Equal(t, 5.625, res.AdjustedAmount)
	assert.Equal(t, 5.0, res.FinalAmount)
	assert.Equal(t, volatility.CapAtMax, res.Capped)
}

func TestAdjust_RaisedToMin(t *testing.T) {
	// High regime halves 0.15 to 0.075, below the 0.1 floor.
	res, err := volatility.Adjust(0.15, buildConfig(300, 700, false))
	require.NoError(t, err)
	assert.Equal(t, 0.1, res.FinalAmount)
	assert.Equal(t, volatility.CapAtMin, res.Capped)
}

func TestAdjust_WithinBounds(t *testing.T) {
	res, err := volatility.Adjust(2.5, buildConfig(300, 350, false))
	require.NoError(t, err)
	assert.Equal(t, 2.5, res.FinalAmount)
	assert.Equal(t, volatility.CapNone, res.Capped)
	assert.GreaterOrEqual(t, res.FinalAmount, res.MinAllowed)
	assert.LessOrEqual(t, res.FinalAmount, res.MaxAllowed)
}

func TestAdjust_FinalAlwaysInBounds(t *testing.T) {
	amounts := []float64{0.01, 0.1, 0.5, 1, 2.5, 4.9, 5, 10, 100}
	currents := []uint64{0, 100, 300, 350, 599, 600, 601, 700, 5000}

	for _, amount := range amounts {
		for _, current := range currents {
			res, err := volatility.Adjust(amount, buildConfig(300, current, false))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.FinalAmount, res.MinAllowed,
				"amount=%v current=%d", amount, current)
			assert.LessOrEqual(t, res.FinalAmount, res.MaxAllowed,
				"amount=%v current=%d", amount, current)
		}
	}
}

func TestAdjust_ZeroBaselineRejected(t *testing.T) {
	cfg := volatility.Build(0, 100, 5.0, 0.1, false, time.Now())
	_, err := volatility.Adjust(1.0, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrPrecondition))
}

func TestAdjust_NonPositiveAmountRejected(t *testing.T) {
	for _, amount := range []float64{0, -1} {
		_, err := volatility.Adjust(amount, buildConfig(300, 300, false))
		require.Error(t, err, "amount=%v", amount)
		assert.True(t, errors.Is(err, core.ErrPrecondition))
	}
}

func TestBuildValidateAdjust_EndToEnd(t *testing.T) {
	now := time.Unix(1700000000, 0)
	cfg := volatility.Build(300, 350, 5.0, 0.1, false, now)

	report := volatility.Validate(cfg, now)
	require.True(t, report.OK())
	assert.Empty(t, report.Warnings)

	res, err := volatility.Adjust(2.5, cfg)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Factor)
	assert.Equal(t, 2.5, res.FinalAmount)
}
