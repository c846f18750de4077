// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/logging/logging.go
// Summary: Shared zap logger for texelkit packages.
// Usage: Library packages log through L(); binaries install a real logger with Set.

package logging

import (
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerPtr holds the active logger. Libraries are silent until Set is called.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// L returns the current logger. Safe for concurrent use.
func L() *zap.Logger {
	return loggerPtr.Load()
}

// Set installs l as the shared logger. Passing nil restores the silent default.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// New builds a console logger at the given level ("debug", "info", "warn", "error").
// An empty level means "info".
func New(level string) (*zap.Logger, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		level = "info"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
