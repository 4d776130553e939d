package twap

import (
	"fmt"
	"time"

	"github.com/Giri-Aayush/1inch-lop/internal/core"
	"github.com/google/uuid"
)

// Config is the persisted TWAP strategy record.
type Config struct {
	StrategyID         string `json:"strategy_id"`
	DurationMinutes    uint64 `json:"duration_minutes"`
	Intervals          uint32 `json:"intervals"`
	RandomizeExecution bool   `json:"randomize_execution"`
	AdaptiveIntervals  bool   `json:"adaptive_intervals"`
	CreatedAt          uint64 `json:"created_at"`
}

// Build assembles a TWAP config from user parameters.
func Build(durationMinutes uint64, intervals uint32, randomize, adaptive bool, now time.Time) (Config, error) {
	if durationMinutes == 0 {
		return Config{}, core.WrapError(core.ErrPrecondition, fmt.Errorf("duration must be positive"))
	}
	if intervals == 0 {
		return Config{}, core.WrapError(core.ErrPrecondition, fmt.Errorf("intervals must be positive"))
	}
	if uint64(intervals) > durationMinutes {
		return Config{}, core.WrapError(core.ErrPrecondition,
			fmt.Errorf("at most one interval per minute: %d intervals over %d minutes", intervals, durationMinutes))
	}

	return Config{
		StrategyID:         uuid.NewString(),
		DurationMinutes:    durationMinutes,
		Intervals:          intervals,
		RandomizeExecution: randomize,
		AdaptiveIntervals:  adaptive,
		CreatedAt:          uint64(now.Unix()),
	}, nil
}

// Slice is one scheduled execution of a simulated TWAP run.
type Slice struct {
	Index  int
	Offset time.Duration
	Amount float64
}

// jitterPattern is the deterministic stand-in for execution randomization in
// simulations. A real executor would draw fresh jitter per run; the
// simulation must stay reproducible so repeated runs compare. The pattern
// sums to zero per cycle, keeping the residual folded into the last slice
// positive for any interval count.
var jitterPattern = []float64{0.12, -0.08, 0.20, -0.15, -0.09}

// Simulate splits an order across the configured intervals and returns the
// schedule. Slices are evenly sized, with any jitter residual folded into
// the last slice so the total always equals the order size.
func Simulate(cfg Config, orderSize float64) ([]Slice, error) {
	if orderSize <= 0 {
		return nil, core.WrapError(core.ErrPrecondition, fmt.Errorf("order size must be positive, got %v", orderSize))
	}
	if cfg.Intervals == 0 {
		return nil, core.WrapError(core.ErrPrecondition, fmt.Errorf("config has zero intervals"))
	}

	n := int(cfg.Intervals)
	spacing := time.Duration(cfg.DurationMinutes) * time.Minute / time.Duration(n)
	base := orderSize / float64(n)

	slices := make([]Slice, n)
	remaining := orderSize
	for i := 0; i < n; i++ {
		amount := base
		if cfg.RandomizeExecution {
			amount = base * (1 + jitterPattern[i%len(jitterPattern)])
		}
		if i == n-1 {
			amount = remaining
		}
		slices[i] = Slice{
			Index:  i,
			Offset: time.Duration(i) * spacing,
			Amount: amount,
		}
		remaining -= amount
	}

	return slices, nil
}
