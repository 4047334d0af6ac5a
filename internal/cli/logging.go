package cli

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDebugLogger builds a file-backed debug logger for the TUI session.
// Logging to a file keeps diagnostics off the alternate screen. The returned
// cleanup function flushes buffered entries.
func NewDebugLogger(path string) (*zap.SugaredLogger, func(), error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create debug logger: %w", err)
	}

	cleanup := func() { _ = logger.Sync() }
	return logger.Sugar(), cleanup, nil
}
