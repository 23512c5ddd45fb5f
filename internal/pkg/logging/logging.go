// Package logging builds the service's zap logger.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by New.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New builds a logger for level ("debug", "info", ...) and format ("json" or "console").
// An unparsable level falls back to info and is reported through the returned logger.
func New(level, format string) (*zap.Logger, error) {
	var zapCfg zap.Config
	switch strings.ToLower(format) {
	case FormatConsole:
		zapCfg = zap.NewDevelopmentConfig()
	case FormatJSON, "":
		zapCfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	logLevel := zapcore.InfoLevel
	var levelErr error
	if level != "" {
		if err := logLevel.UnmarshalText([]byte(level)); err != nil {
			logLevel = zapcore.InfoLevel
			levelErr = err
		}
	}
	zapCfg.Level = zap.NewAtomicLevelAt(logLevel)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	if levelErr != nil {
		logger.Warn("Failed to parse log level, using default",
			zap.String("configValue", level),
			zap.Error(levelErr),
			zap.String("defaultLevel", logLevel.String()),
		)
	}

	return logger, nil
}

// Sync flushes buffered entries, ignoring the harmless error stderr returns on some platforms.
func Sync(logger *zap.Logger) {
	if logger != nil {
		_ = logger.Sync()
	}
}
