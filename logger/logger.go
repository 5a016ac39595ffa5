package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// New provides the process-wide sugared logger.
func New() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger := zap.Must(cfg.Build())
	return logger.Sugar()
}

// NewTestLogger returns a logger plus the observed logs for testing.
func NewTestLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zap.InfoLevel)
	return zap.New(core).Sugar(), recorded
}
