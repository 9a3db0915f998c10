// Package api provides the HTTP API for the application
package api

import (
	"workdays/internal/adapters/holidays"
	"workdays/internal/core/calendar"
	"workdays/internal/platform/config"
	"workdays/internal/platform/logger"
	phttp "workdays/internal/platform/net/http"

	"workdays/internal/modkit"
	"workdays/internal/modkit/httpkit"
	"workdays/internal/modkit/module"
	"workdays/internal/modkit/swaggerkit"

	holidaysmod "workdays/internal/services/api/holidays/module"
	metamod "workdays/internal/services/api/meta/module"
	workdatemod "workdays/internal/services/api/workdate/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Calc           *calendar.Calculator
	Holidays       *holidays.Snapshot
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:      opt.Config,
		Calc:     opt.Calc,
		Holidays: opt.Holidays,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		workdatemod.New(deps),
		holidaysmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler live at the root, outside the versioned prefix
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
