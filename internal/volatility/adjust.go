package volatility

import (
	"fmt"

	"github.com/Giri-Aayush/1inch-lop/internal/core"
)

// Cap records whether the execution bounds clamped the adjusted amount.
type Cap int

const (
	CapNone Cap = iota
	CapAtMax
	CapAtMin
)

func (c Cap) String() string {
	switch c {
	case CapAtMax:
		return "capped at maximum"
	case CapAtMin:
		return "raised to minimum"
	default:
		return "none"
	}
}

// Result is the outcome of a volatility adjustment.
type Result struct {
	Factor         int // percent
	AdjustedAmount float64
	FinalAmount    float64
	MinAllowed     float64
	MaxAllowed     float64
	Capped         Cap
}

// Adjust scales a trade amount by the current volatility regime and clamps
// the result to the configured execution bounds.
//
// Three regimes, checked in precedence order. Low volatility (current at or
// below baseline) boosts the amount by up to 50%; high volatility (current
// above the 2x threshold) reduces it by up to 50%; in between, conservative
// mode trims to 90% and otherwise the amount passes through. The boost and
// reduction ratios use integer division on basis points, so the factor moves
// in coarse steps rather than continuously.
func Adjust(amount float64, cfg Config) (Result, error) {
	if cfg.BaselineVolatility == 0 {
		return Result{}, core.WrapError(core.ErrPrecondition, fmt.Errorf("baseline volatility is zero"))
	}
	if amount <= 0 {
		return Result{}, core.WrapError(core.ErrPrecondition, fmt.Errorf("amount must be positive, got %v", amount))
	}

	var factor int
	switch {
	case cfg.CurrentVolatility <= cfg.BaselineVolatility:
		boost := (cfg.BaselineVolatility - cfg.CurrentVolatility) * 50 / cfg.BaselineVolatility
		if boost > 50 {
			boost = 50
		}
		factor = 100 + int(boost)

	case cfg.CurrentVolatility > cfg.VolatilityThreshold:
		reduction := (cfg.CurrentVolatility - cfg.BaselineVolatility) * 50 / cfg.BaselineVolatility
		if reduction > 50 {
			reduction = 50
		}
		factor = 100 - int(reduction)

	default:
		if cfg.ConservativeMode {
			factor = 90
		} else {
			factor = 100
		}
	}

	res := Result{
		Factor:         factor,
		AdjustedAmount: amount * float64(factor) / 100,
		MinAllowed:     cfg.MinExecutionSize.Whole(),
		MaxAllowed:     cfg.MaxExecutionSize.Whole(),
	}

	final := res.AdjustedAmount
	if final < res.MinAllowed {
		final = res.MinAllowed
	}
	if final > res.MaxAllowed {
		final = res.MaxAllowed
	}
	res.FinalAmount = final

	if final != res.AdjustedAmount {
		if final == res.MaxAllowed {
			res.Capped = CapAtMax
		} else if final == res.MinAllowed {
			res.Capped = CapAtMin
		}
	}

	return res, nil
}
