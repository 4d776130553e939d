package options_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Giri-Aayush/1inch-lop/internal/options"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuild(t *testing.T) {
	cfg, err := options.Build(options.TypeCall, dec("2100"), dec("50"), 168, time.Unix(1700000000, 0))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.StrategyID)
	assert.Equal(t, options.TypeCall, cfg.OptionType)
	assert.True(t, cfg.StrikePrice.Equal(dec("2100")))
	assert.Equal(t, uint64(168), cfg.ExpirationHours)
	assert.Equal(t, uint64(1700000000), cfg.CreatedAt)
}

func TestBuild_RejectsBadInputs(t *testing.T) {
	now := time.Now()

	_, err := options.Build("straddle", dec("2100"), dec("50"), 168, now)
	assert.Error(t, err, "unknown option type")

	_, err = options.Build(options.TypeCall, dec("0"), dec("50"), 168, now)
	assert.Error(t, err, "zero strike")

	_, err = options.Build(options.TypePut, dec("2100"), dec("-1"), 168, now)
	assert.Error(t, err, "negative premium")

	_, err = options.Build(options.TypeCall, dec("2100"), dec("50"), 0, now)
	assert.Error(t, err, "zero expiration")
}

func TestEstimatePremium_CallInTheMoney(t *testing.T) {
	// intrinsic 100 + 24h * 0.1 = 102.4
	got := options.EstimatePremium(options.TypeCall, dec("2200"), dec("2100"), dec("24"))
	assert.True(t, got.Equal(dec("102.4")), "got %s", got)
}

func TestEstimatePremium_CallOutOfTheMoney(t *testing.T) {
	// intrinsic floors at zero, leaving only time value
	got := options.EstimatePremium(options.TypeCall, dec("2000"), dec("2100"), dec("24"))
	assert.True(t, got.Equal(dec("2.4")), "got %s", got)
}

func TestEstimatePremium_Put(t *testing.T) {
	// put intrinsic is strike - current
	got := options.EstimatePremium(options.TypePut, dec("2000"), dec("2100"), dec("10"))
	assert.True(t, got.Equal(dec("101")), "got %s", got)
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "option-config.json")

	orig, err := options.Build(options.TypePut, dec("2100"), dec("50"), 168, time.Unix(1700000000, 0))
	require.NoError(t, err)
	require.NoError(t, options.Save(path, orig))

	got, err := options.Load(path)
	require.NoError(t, err)
	assert.Equal(t, orig.StrategyID, got.StrategyID)
	assert.Equal(t, orig.OptionType, got.OptionType)
	assert.True(t, got.StrikePrice.Equal(orig.StrikePrice))
	assert.True(t, got.Premium.Equal(orig.Premium))
}
