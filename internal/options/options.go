package options

import (
	"fmt"
	"time"

	"github.com/Giri-Aayush/1inch-lop/internal/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type distinguishes calls from puts.
type Type string

const (
	TypeCall Type = "call"
	TypePut  Type = "put"
)

// timeValuePerHour is the flat per-hour time value used by the premium
// estimate. Deliberately crude: the tool drafts configs, it does not price.
var timeValuePerHour = decimal.RequireFromString("0.1")

// Config is the persisted option strategy record. Monetary fields are USDC.
type Config struct {
	StrategyID      string          `json:"strategy_id"`
	OptionType      Type            `json:"option_type"`
	StrikePrice     decimal.Decimal `json:"strike_price"`
	Premium         decimal.Decimal `json:"premium"`
	ExpirationHours uint64          `json:"expiration_hours"`
	CreatedAt       uint64          `json:"created_at"`
}

// Build assembles an option config from user parameters.
func Build(optType Type, strike, premium decimal.Decimal, expirationHours uint64, now time.Time) (Config, error) {
	if optType != TypeCall && optType != TypePut {
		return Config{}, core.WrapError(core.ErrPrecondition, fmt.Errorf("unknown option type %q", optType))
	}
	if !strike.IsPositive() {
		return Config{}, core.WrapError(core.ErrPrecondition, fmt.Errorf("strike price must be positive, got %s", strike))
	}
	if !premium.IsPositive() {
		return Config{}, core.WrapError(core.ErrPrecondition, fmt.Errorf("premium must be positive, got %s", premium))
	}
	if expirationHours == 0 {
		return Config{}, core.WrapError(core.ErrPrecondition, fmt.Errorf("expiration must be positive"))
	}

	return Config{
		StrategyID:      uuid.NewString(),
		OptionType:      optType,
		StrikePrice:     strike,
		Premium:         premium,
		ExpirationHours: expirationHours,
		CreatedAt:       uint64(now.Unix()),
	}, nil
}

// EstimatePremium returns intrinsic value plus a flat time value of 0.1 USDC
// per hour to expiry. Intrinsic value floors at zero for out-of-the-money
// options.
func EstimatePremium(optType Type, currentPrice, strikePrice decimal.Decimal, hoursToExpiry decimal.Decimal) decimal.Decimal {
	var intrinsic decimal.Decimal
	switch optType {
	case TypePut:
		intrinsic = strikePrice.Sub(currentPrice)
	default:
		intrinsic = currentPrice.Sub(strikePrice)
	}
	if intrinsic.IsNegative() {
		intrinsic = decimal.Zero
	}
	return intrinsic.Add(hoursToExpiry.Mul(timeValuePerHour))
}
