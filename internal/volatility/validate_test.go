package volatility

import (
	"testing"
	"time"
)

func TestValidate_CleanConfig(t *testing.T) {
	now := time.Unix(1700000000, 0)
	cfg := Build(300, 300, 5.0, 0.1, false, now)

	r := Validate(cfg, now)
	if !r.OK() {
		t.Fatalf("expected valid config, got errors: %v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got: %v", r.Warnings)
	}
}

func TestValidate_HighVolatilityWarning(t *testing.T) {
	now := time.Unix(1700000000, 0)
	cfg := Build(300, 901, 5.0, 0.1, false, now) // just above 3x baseline

	r := Validate(cfg, now)
	if len(r.Warnings) != 1 {
		t.Fatalf("expected one warning, got: %v", r.Warnings)
	}
	if !r.OK() {
		t.Errorf("901bps is below the 1200bps emergency threshold, got errors: %v", r.Errors)
	}
}

func TestValidate_EmergencyThresholdError(t *testing.T) {
	now := time.Unix(1700000000, 0)
	cfg := Build(300, 1201, 5.0, 0.1, false, now) // emergency threshold + 1

	r := Validate(cfg, now)
	if r.OK() {
		t.Fatal("expected validation failure above emergency threshold")
	}
	// 1201 > 3*300 as well, so the conservative-mode warning fires too;
	// warnings and errors are both reported, never short-circuited.
	if len(r.Warnings) == 0 {
		t.Error("expected the 3x-baseline warning alongside the error")
	}
}

func TestValidate_SizeOrderingError(t *testing.T) {
	now := time.Unix(1700000000, 0)

	cfg := Build(300, 300, 0.1, 5.0, false, now) // max < min
	if r := Validate(cfg, now); r.OK() {
		t.Error("expected error when max < min")
	}

	cfg = Build(300, 300, 1.0, 1.0, false, now) // max == min
	if r := Validate(cfg, now); r.OK() {
		t.Error("expected error when max == min")
	}
}

func TestValidate_StaleConfig(t *testing.T) {
	built := time.Unix(1700000000, 0)
	cfg := Build(300, 300, 5.0, 0.1, false, built)

	r := Validate(cfg, built.Add(time.Hour+time.Second))
	if !r.OK() {
		t.Fatalf("staleness is a warning, not an error: %v", r.Errors)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected staleness warning, got: %v", r.Warnings)
	}

	// Exactly one hour old is still fresh.
	r = Validate(cfg, built.Add(time.Hour))
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warning at exactly one hour, got: %v", r.Warnings)
	}
}

func TestValidate_ZeroBaseline(t *testing.T) {
	now := time.Unix(1700000000, 0)
	cfg := Build(0, 0, 5.0, 0.1, false, now)

	r := Validate(cfg, now)
	if r.OK() {
		t.Fatal("expected error for zero baseline volatility")
	}
}

func TestValidate_ReportsEverything(t *testing.T) {
	// A thoroughly broken config: above emergency, max <= min, stale.
	built := time.Unix(1700000000, 0)
	cfg := Build(300, 1500, 0.1, 5.0, false, built)

	r := Validate(cfg, built.Add(2*time.Hour))
	if len(r.Errors) != 2 {
		t.Errorf("expected two errors, got: %v", r.Errors)
	}
	if len(r.Warnings) != 2 {
		t.Errorf("expected two warnings, got: %v", r.Warnings)
	}
}
