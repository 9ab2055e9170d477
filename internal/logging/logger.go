// Package logging holds the library's global logger. Traversal code never
// logs; only the parallel join path emits trace-level events. The logger
// defaults to a no-op so that embedding applications opt in explicitly.
package logging

import (
	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

// SetGlobalLogger replaces the logger used by the library.
func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
}

func With() zerolog.Context { return Logger.With() }

func Err(err error) *zerolog.Event { return Logger.Err(err) }

func Trace() *zerolog.Event { return Logger.Trace() }

func Debug() *zerolog.Event { return Logger.Debug() }

func Warn() *zerolog.Event { return Logger.Warn() }
