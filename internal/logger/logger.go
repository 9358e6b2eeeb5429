// Package logger provides the process-wide structured logger used across the
// EnergyAI service. Everything logs through a single shared instance so the
// output format and level stay consistent from main to the deepest service.
package logger

import (
	"sync"
)

// Levels accepted by Get.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the shared logger, initializing it at the given level on the
// first call. The level argument of later calls is ignored.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level)
	})
	return globalLogger
}
