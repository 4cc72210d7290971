// Package logging wraps zap behind a small constructor so every component in
// the viewer logs through the same sugared logger configuration.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper around zap.SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger creates a new Logger instance.
//
// Parameters:
//   - development: use zap's development config (console encoder, colored levels)
//   - debug: lower the level threshold to Debug
//
// Returns:
//   - *Logger: the configured logger
//   - error: error if the zap config fails to build
func NewLogger(development, debug bool) (*Logger, error) {
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{zapLogger.Sugar()}, nil
}

// Nop returns a logger that discards everything. Components default to this
// when no logger option is provided.
//
// Returns:
//   - *Logger: a no-op logger
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// Sync flushes any buffered log entries.
//
// Returns:
//   - error: error if flushing fails
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}
