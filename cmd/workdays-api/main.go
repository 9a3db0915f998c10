// @title         Workdays API
// @version       0.1.0
// @description   Business calendar arithmetic over the Colombian working day

package main

import (
	"context"

	"workdays/internal/adapters/holidays"
	"workdays/internal/core/calendar"
	"workdays/internal/platform/config"
	"workdays/internal/platform/logger"
	phttp "workdays/internal/platform/net/http"

	"workdays/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	calCfg := root.Prefix("CALENDAR_") // business day shape lives under CALENDAR_*
	holCfg := root.Prefix("HOLIDAYS_") // holiday source lives under HOLIDAYS_*

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	loc, err := calendar.LoadLocation(calCfg.MayString("TZ", calendar.DefaultTimezone))
	if err != nil {
		l.Panic().Err(err).Msg("calendar timezone load failed")
	}

	profile := calendar.Profile{
		Start:      calCfg.MayInt("START_HOUR", 8),
		LunchStart: calCfg.MayInt("LUNCH_START_HOUR", 12),
		LunchEnd:   calCfg.MayInt("LUNCH_END_HOUR", 13),
		End:        calCfg.MayInt("END_HOUR", 17),
	}

	// holidays are fetched exactly once, before the server accepts traffic
	snap, err := holidays.NewLoader(holidays.FromConfig(holCfg)).Load(context.Background())
	if err != nil {
		l.Panic().Err(err).Msg("holiday load failed")
	}
	l.Info().
		Str("source", snap.Source).
		Int("count", snap.Set.Len()).
		Msg("holiday snapshot ready")

	calc, err := calendar.New(profile, loc, snap.Set)
	if err != nil {
		l.Panic().Err(err).Msg("calendar profile invalid")
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Calc:           calc,
			Holidays:       snap,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
