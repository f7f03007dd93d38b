package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// New builds a development (console) or production (JSON) logger at the
// given level: debug, info, warn or error.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Init replaces the global logger.
func Init(level string, development bool) (*zap.Logger, error) {
	l, err := New(level, development)
	if err != nil {
		return nil, err
	}
	mu.Lock()
	global = l
	mu.Unlock()
	return l, nil
}

func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = L().Sync()
}

func Info(msg string, fields ...zapcore.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zapcore.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zapcore.Field) { L().Error(msg, fields...) }
func Debug(msg string, fields ...zapcore.Field) { L().Debug(msg, fields...) }
