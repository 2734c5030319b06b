// Package logging builds the zap logger from configuration.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tessro/feedcast/internal/config"
)

// New returns a logger for cfg. A configured file gets JSON lines; without
// one, verbose mode logs to stderr and otherwise logging is discarded so
// the dashboard's screen stays intact.
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if cfg.File != "" {
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, err := zc.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return logger, nil
	}

	if verbose {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(zapcore.DebugLevel),
		)
		return zap.New(core), nil
	}

	return zap.NewNop(), nil
}

// ParseLevel maps a config level name to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch s {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", s)
	}
}
