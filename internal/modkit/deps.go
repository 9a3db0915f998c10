// Package modkit provides module wiring and core deps
package modkit

import (
	"workdays/internal/adapters/holidays"
	"workdays/internal/core/calendar"
	"workdays/internal/platform/config"
	"workdays/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log      logger.Logger
	Cfg      config.Conf
	Calc     *calendar.Calculator
	Holidays *holidays.Snapshot
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check optional fields
func (d Deps) ZeroOK() bool { return true }
