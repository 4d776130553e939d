package volatility

import (
	"encoding/json"
	"os"

	"github.com/Giri-Aayush/1inch-lop/internal/core"
)

// Load reads a volatility config from a JSON file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, core.WrapError(core.ErrFileNotFound, err)
		}
		return Config{}, core.WrapError(core.ErrMalformedInput, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, core.WrapError(core.ErrMalformedInput, err)
	}
	return cfg, nil
}

// Save writes a volatility config as pretty-printed JSON.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return core.WrapError(core.ErrMalformedInput, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return core.WrapError(core.ErrStoreFailed, err)
	}
	return nil
}
