package volatility

import "time"

// staleAfter is how long a config stays fresh after last_update_time.
const staleAfter = 3600 // seconds

// Report holds the validator's findings in rule order. Warnings never fail
// validation on their own; any error does.
type Report struct {
	Warnings []string
	Errors   []string
}

// OK reports whether the configuration passed validation.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// Validate checks a loaded config against the rule set. Every rule is
// evaluated; nothing short-circuits, so the caller always sees the complete
// diagnostic picture in one pass.
func Validate(cfg Config, now time.Time) Report {
	var r Report

	if cfg.CurrentVolatility > cfg.BaselineVolatility*3 {
		r.Warnings = append(r.Warnings, "current volatility is more than 3x baseline - consider conservative mode")
	}

	if cfg.CurrentVolatility > cfg.EmergencyThreshold {
		r.Errors = append(r.Errors, "current volatility exceeds emergency threshold")
	}

	if cfg.MaxExecutionSize.Cmp(cfg.MinExecutionSize) <= 0 {
		r.Errors = append(r.Errors, "max execution size must be greater than min execution size")
	}

	if now.Unix()-int64(cfg.LastUpdateTime) > staleAfter {
		r.Warnings = append(r.Warnings, "configuration is more than 1 hour old")
	}

	if cfg.BaselineVolatility == 0 {
		r.Errors = append(r.Errors, "baseline volatility must be greater than zero")
	}

	return r
}
