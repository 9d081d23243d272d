// Package logger provides structured logging using Zap.
package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment and level.
// "production" uses a JSON encoder, "test" discards everything, and all
// other environments use a human-readable console encoder. An empty or
// unknown level keeps the environment's default.
func Init(env, level string) {
	once.Do(func() {
		var cfg zap.Config
		switch env {
		case "production":
			cfg = zap.NewProductionConfig()
		case "test":
			sugar = zap.NewNop().Sugar()
			return
		default:
			cfg = zap.NewDevelopmentConfig()
		}

		if lvl, err := zapcore.ParseLevel(strings.ToLower(level)); level != "" && err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}

		base, err := cfg.Build()
		if err != nil {
			base = zap.NewNop()
		}
		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	Init("development", "")
	return sugar
}

// Named returns a child logger scoped to a component.
func Named(component string) *zap.SugaredLogger {
	return Get().Named(component)
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
