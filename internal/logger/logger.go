// Package logger provides the process-wide zap logger. Packages that log
// keep a file-level `var log = logger.L()` and never construct their own.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	root  = newRoot()
	sugar = root.Sugar()
)

func newRoot() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	l, err := cfg.Build()
	if err != nil {
		// The development config only fails on a bad sink path
		panic(err)
	}
	return l
}

// L returns the shared sugared logger.
func L() *zap.SugaredLogger {
	return sugar
}

// SetLevel adjusts the minimum level for all loggers handed out by L.
func SetLevel(lvl zapcore.Level) {
	level.SetLevel(lvl)
}

// Close flushes buffered log entries. Call it on the way out of main.
func Close() {
	_ = root.Sync()
}
