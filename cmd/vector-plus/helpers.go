package main

import (
	"context"
	"os"
	"time"

	"github.com/Giri-Aayush/1inch-lop/internal/config"
	"github.com/Giri-Aayush/1inch-lop/internal/storage/archive"
	"go.uber.org/zap"
)

// loadToolConfig reads the tool configuration, falling back to built-in
// defaults when no config file exists yet. The --network flag overrides the
// configured network either way.
func loadToolConfig() (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(cfgFile); err == nil {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.Defaults()
	}

	if network != "" {
		cfg.Network = network
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// archiveConfigCopy stores a timestamped copy of a freshly written strategy
// config in the configured archive. Archive trouble is logged, never fatal:
// the file on disk is the source of truth.
func archiveConfigCopy(log *zap.Logger, cfg *config.Config, family, filename string, data []byte) {
	store, err := archive.New(cfg.Archive)
	if err != nil {
		log.Warn("archive unavailable", zap.Error(err))
		return
	}
	if store == nil {
		return
	}

	key := archive.Key(family, time.Now().Unix(), filename)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.Write(ctx, key, data); err != nil {
		log.Warn("archiving config copy failed", zap.String("key", key), zap.Error(err))
		return
	}
	log.Debug("archived config copy", zap.String("key", key))
}
