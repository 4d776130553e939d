package volatility

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// minorUnitsPerWhole is the wei-style scale: 10^18 minor units per whole unit.
var minorUnitsPerWhole = decimal.New(1, 18)

// MinorAmount is an execution size held as an exact integer count of minor
// units (10^-18 of a whole unit). It marshals to the decimal string the
// config file format uses, so monetary fields never pass through a float.
type MinorAmount struct {
	value decimal.Decimal
}

// MinorFromWhole converts a whole-unit size (e.g. 5.0 ETH) to minor units,
// truncating anything below one minor unit.
func MinorFromWhole(whole float64) MinorAmount {
	v := decimal.NewFromFloat(whole).Mul(minorUnitsPerWhole).Truncate(0)
	return MinorAmount{value: v}
}

// Whole returns the amount converted back to whole units.
func (m MinorAmount) Whole() float64 {
	f, _ := m.value.Div(minorUnitsPerWhole).Float64()
	return f
}

// Cmp compares two amounts, returning -1, 0 or 1.
func (m MinorAmount) Cmp(other MinorAmount) int {
	return m.value.Cmp(other.value)
}

// String returns the minor-unit integer representation.
func (m MinorAmount) String() string {
	return m.value.String()
}

// MarshalJSON writes the amount as a minor-unit decimal string.
func (m MinorAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.value.String())
}

// UnmarshalJSON reads a minor-unit decimal string. An unparseable string
// decodes as zero rather than failing: a corrupted size field downgrades a
// config to useless-but-loadable, and the validator reports it as a size
// ordering error. A non-string JSON value is still a type error.
func (m *MinorAmount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		m.value = decimal.Zero
		return nil
	}
	m.value = v
	return nil
}

// Config is the persisted volatility strategy record. Field names match the
// JSON file format exactly; volatility figures are in basis points.
type Config struct {
	BaselineVolatility  uint64      `json:"baseline_volatility"`
	CurrentVolatility   uint64      `json:"current_volatility"`
	MaxExecutionSize    MinorAmount `json:"max_execution_size"`
	MinExecutionSize    MinorAmount `json:"min_execution_size"`
	VolatilityThreshold uint64      `json:"volatility_threshold"`
	ConservativeMode    bool        `json:"conservative_mode"`
	EmergencyThreshold  uint64      `json:"emergency_threshold"`
	LastUpdateTime      uint64      `json:"last_update_time"`
}

// Build derives a full config from the user-supplied baseline inputs.
// The thresholds are fixed multiples of the baseline: the warning threshold
// at 2x, the emergency threshold at 4x. Build performs no cross-checking
// between max and min sizes; an inconsistent record is legal to build and is
// rejected at validation time instead.
func Build(baseline, current uint64, maxSize, minSize float64, conservative bool, now time.Time) Config {
	return Config{
		BaselineVolatility:  baseline,
		CurrentVolatility:   current,
		MaxExecutionSize:    MinorFromWhole(maxSize),
		MinExecutionSize:    MinorFromWhole(minSize),
		VolatilityThreshold: baseline * 2,
		ConservativeMode:    conservative,
		EmergencyThreshold:  baseline * 4,
		LastUpdateTime:      uint64(now.Unix()),
	}
}
