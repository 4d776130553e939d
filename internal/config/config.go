package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Giri-Aayush/1inch-lop/internal/core"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultPath is where the tool looks for its configuration by default.
const DefaultPath = "vector-plus.json"

type Config struct {
	Network  string         `mapstructure:"network" json:"network"`
	Defaults DefaultsConfig `mapstructure:"defaults" json:"defaults"`
	Archive  ArchiveConfig  `mapstructure:"archive" json:"archive"`
}

// DefaultsConfig carries per-family defaults applied when a command flag is
// left unset.
type DefaultsConfig struct {
	Volatility VolatilityDefaults `mapstructure:"volatility" json:"volatility"`
	TWAP       TWAPDefaults       `mapstructure:"twap" json:"twap"`
	Options    OptionsDefaults    `mapstructure:"options" json:"options"`
}

type VolatilityDefaults struct {
	BaselineVolatility uint64  `mapstructure:"baseline_volatility" json:"baseline_volatility"`
	MaxExecutionSize   float64 `mapstructure:"max_execution_size" json:"max_execution_size"`
	MinExecutionSize   float64 `mapstructure:"min_execution_size" json:"min_execution_size"`
	ConservativeMode   bool    `mapstructure:"conservative_mode" json:"conservative_mode"`
}

type TWAPDefaults struct {
	DurationMinutes    uint64 `mapstructure:"duration_minutes" json:"duration_minutes"`
	Intervals          uint32 `mapstructure:"intervals" json:"intervals"`
	RandomizeExecution bool   `mapstructure:"randomize_execution" json:"randomize_execution"`
	AdaptiveIntervals  bool   `mapstructure:"adaptive_intervals" json:"adaptive_intervals"`
}

type OptionsDefaults struct {
	DefaultExpirationHours uint64 `mapstructure:"default_expiration_hours" json:"default_expiration_hours"`
	ImpliedVolatility      uint64 `mapstructure:"implied_volatility" json:"implied_volatility"` // bps
	RiskFreeRate           uint64 `mapstructure:"risk_free_rate" json:"risk_free_rate"`         // bps
}

// ArchiveConfig selects where copies of generated strategy configs are kept.
type ArchiveConfig struct {
	Enabled bool     `mapstructure:"enabled" json:"enabled"`
	Type    string   `mapstructure:"type" json:"type"` // "localfs" or "s3"
	Path    string   `mapstructure:"path" json:"path"` // for localfs
	S3      S3Config `mapstructure:"s3" json:"s3"`     // for s3
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket" json:"bucket"`
	Endpoint  string `mapstructure:"endpoint" json:"endpoint"`
	Region    string `mapstructure:"region" json:"region"`
	AccessKey string `mapstructure:"access_key" json:"access_key"`
	SecretKey string `mapstructure:"secret_key" json:"secret_key"`
	Prefix    string `mapstructure:"prefix" json:"prefix"`
}

// Load reads the tool configuration from file. A .env in the working
// directory is loaded first so archive credentials can stay out of the
// config file; string values of the form ${VAR} expand from the
// environment.
func Load(path string) (*Config, error) {
	// Missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Defaults returns the stock configuration written by `config init`.
func Defaults() *Config {
	return &Config{
		Network: "mainnet",
		Defaults: DefaultsConfig{
			Volatility: VolatilityDefaults{
				BaselineVolatility: 300,
				MaxExecutionSize:   5.0,
				MinExecutionSize:   0.1,
				ConservativeMode:   false,
			},
			TWAP: TWAPDefaults{
				DurationMinutes:    120,
				Intervals:          12,
				RandomizeExecution: true,
				AdaptiveIntervals:  true,
			},
			Options: OptionsDefaults{
				DefaultExpirationHours: 168,  // 1 week
				ImpliedVolatility:      8000, // 80%
				RiskFreeRate:           300,  // 3%
			},
		},
		Archive: ArchiveConfig{
			Enabled: false,
			Type:    "localfs",
			Path:    ".vector-plus/archive",
		},
	}
}

// Save writes the configuration as pretty-printed JSON, the format `config
// init` produces and Load reads back.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return core.WrapError(core.ErrConfigInvalid, err)
	}
	return os.WriteFile(path, data, 0644)
}

var knownNetworks = map[string]bool{
	"mainnet":  true,
	"polygon":  true,
	"arbitrum": true,
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if !knownNetworks[c.Network] {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown network %q (want mainnet, polygon or arbitrum)", c.Network))
	}

	if c.Defaults.Volatility.BaselineVolatility == 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("volatility baseline default cannot be zero"))
	}
	if c.Defaults.Volatility.MaxExecutionSize <= c.Defaults.Volatility.MinExecutionSize {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("volatility max size default must exceed min size default"))
	}

	if c.Defaults.TWAP.DurationMinutes == 0 || c.Defaults.TWAP.Intervals == 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("twap defaults must be positive"))
	}

	switch c.Archive.Type {
	case "localfs":
		if c.Archive.Enabled && c.Archive.Path == "" {
			return core.WrapError(core.ErrConfigMissing,
				fmt.Errorf("archive path required for localfs archive"))
		}
	case "s3":
		if c.Archive.Enabled && c.Archive.S3.Bucket == "" {
			return core.WrapError(core.ErrConfigMissing,
				fmt.Errorf("s3 bucket required for s3 archive"))
		}
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown archive type %q (want localfs or s3)", c.Archive.Type))
	}

	return nil
}
