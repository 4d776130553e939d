package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates the CLI logger. Verbose mode uses the development config with
// colored levels and debug output; otherwise only warnings and above reach
// stderr, keeping stdout clean for command output.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Must creates a logger or panics
func Must(verbose bool) *zap.Logger {
	log, err := New(verbose)
	if err != nil {
		panic(err)
	}
	return log
}
