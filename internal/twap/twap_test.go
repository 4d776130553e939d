package twap

import (
	"math"
	"path/filepath"
	"testing"
	"time"
)

func TestBuild(t *testing.T) {
	now := time.Unix(1700000000, 0)
	cfg, err := Build(120, 12, true, true, now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if cfg.StrategyID == "" {
		t.Error("expected a strategy id")
	}
	if cfg.DurationMinutes != 120 || cfg.Intervals != 12 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.CreatedAt != 1700000000 {
		t.Errorf("expected created_at 1700000000, got %d", cfg.CreatedAt)
	}
}

func TestBuild_RejectsBadInputs(t *testing.T) {
	now := time.Now()

	if _, err := Build(0, 12, false, false, now); err == nil {
		t.Error("expected error for zero duration")
	}
	if _, err := Build(120, 0, false, false, now); err == nil {
		t.Error("expected error for zero intervals")
	}
	if _, err := Build(10, 11, false, false, now); err == nil {
		t.Error("expected error for more than one interval per minute")
	}
}

func TestSimulate_EvenSplit(t *testing.T) {
	cfg, _ := Build(120, 12, false, false, time.Now())
	slices, err := Simulate(cfg, 6.0)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	if len(slices) != 12 {
		t.Fatalf("expected 12 slices, got %d", len(slices))
	}
	for _, s := range slices {
		if math.Abs(s.Amount-0.5) > 1e-9 {
			t.Errorf("slice %d: expected 0.5, got %v", s.Index, s.Amount)
		}
	}
	if slices[1].Offset != 10*time.Minute {
		t.Errorf("expected 10m spacing, got %v", slices[1].Offset)
	}
}

func TestSimulate_RandomizedSumsToOrderSize(t *testing.T) {
	for _, intervals := range []uint32{3, 12, 60} {
		cfg, _ := Build(120, intervals, true, false, time.Now())
		slices, err := Simulate(cfg, 10.0)
		if err != nil {
			t.Fatalf("Simulate: %v", err)
		}

		var sum float64
		for _, s := range slices {
			if s.Amount <= 0 {
				t.Errorf("intervals=%d: slice %d non-positive: %v", intervals, s.Index, s.Amount)
			}
			sum += s.Amount
		}
		if math.Abs(sum-10.0) > 1e-9 {
			t.Errorf("intervals=%d: slices sum to %v, want 10.0", intervals, sum)
		}
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	cfg, _ := Build(60, 6, true, false, time.Now())

	a, _ := Simulate(cfg, 5.0)
	b, _ := Simulate(cfg, 5.0)
	for i := range a {
		if a[i].Amount != b[i].Amount {
			t.Fatalf("simulation not reproducible at slice %d", i)
		}
	}
}

func TestSimulate_RejectsNonPositiveOrder(t *testing.T) {
	cfg, _ := Build(60, 6, false, false, time.Now())
	if _, err := Simulate(cfg, 0); err == nil {
		t.Error("expected error for zero order size")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twap-config.json")

	orig, _ := Build(120, 12, true, false, time.Unix(1700000000, 0))
	if err := Save(path, orig); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != orig {
		t.Errorf("round trip changed config: %+v vs %+v", got, orig)
	}
}
