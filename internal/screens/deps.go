// Package screens holds what the TUI screens share.
package screens

import (
	"go.uber.org/zap"

	"github.com/abhisek/neurotrack/internal/results"
	"github.com/abhisek/neurotrack/internal/scoring"
)

// Deps are the services screens read from and write to.
type Deps struct {
	Results *results.Store
	Engine  *scoring.Engine
	Log     *zap.Logger
}

// Logger returns d.Log, or a no-op logger when unset.
func (d Deps) Logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}
