package combined

import (
	"fmt"
	"time"

	"github.com/Giri-Aayush/1inch-lop/internal/core"
	"github.com/google/uuid"
)

// Config is the persisted combined TWAP + volatility strategy record. The
// TWAP fields schedule the execution; the threshold gates each slice against
// market volatility at execution time.
type Config struct {
	StrategyID          string `json:"strategy_id"`
	TWAPDurationMinutes uint64 `json:"twap_duration_minutes"`
	TWAPIntervals       uint32 `json:"twap_intervals"`
	VolatilityThreshold uint64 `json:"volatility_threshold"`
	CreatedAt           uint64 `json:"created_at"`
}

// Build assembles a combined strategy config from user parameters.
func Build(twapDurationMinutes uint64, twapIntervals uint32, volatilityThreshold uint64, now time.Time) (Config, error) {
	if twapDurationMinutes == 0 {
		return Config{}, core.WrapError(core.ErrPrecondition, fmt.Errorf("twap duration must be positive"))
	}
	if twapIntervals == 0 {
		return Config{}, core.WrapError(core.ErrPrecondition, fmt.Errorf("twap intervals must be positive"))
	}
	if uint64(twapIntervals) > twapDurationMinutes {
		return Config{}, core.WrapError(core.ErrPrecondition,
			fmt.Errorf("at most one interval per minute: %d intervals over %d minutes", twapIntervals, twapDurationMinutes))
	}
	if volatilityThreshold == 0 {
		return Config{}, core.WrapError(core.ErrPrecondition, fmt.Errorf("volatility threshold must be positive"))
	}

	return Config{
		StrategyID:          uuid.NewString(),
		TWAPDurationMinutes: twapDurationMinutes,
		TWAPIntervals:       twapIntervals,
		VolatilityThreshold: volatilityThreshold,
		CreatedAt:           uint64(now.Unix()),
	}, nil
}
