package holidays

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"workdays/internal/core/calendar"
	"workdays/internal/platform/config"
	perr "workdays/internal/platform/errors"
	"workdays/internal/platform/logger"
)

// Options configures the loader
type Options struct {
	URL        string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration

	// CacheFile, when set, stores the last successful payload so a flaky
	// network does not take the service down on restart
	CacheFile string
}

// FromConfig reads HOLIDAYS_* keys into Options
func FromConfig(cfg config.Conf) Options {
	return Options{
		URL:        cfg.MayString("URL", defaultURL),
		UserAgent:  cfg.MayString("USER_AGENT", defaultUA),
		Timeout:    cfg.MayDuration("TIMEOUT", defaultTimeout),
		MaxRetries: cfg.MayInt("MAX_RETRIES", defaultMaxRetry),
		RetryBase:  cfg.MayDuration("RETRY_BASE", defaultRetryBase),
		CacheFile:  cfg.MayString("CACHE_FILE", ""),
	}
}

// Snapshot is the frozen result of a holiday load. It is handed to the engine
// by reference after the one-time initialization barrier in main; nothing
// writes to it afterwards.
type Snapshot struct {
	Set      *calendar.HolidaySet
	Source   string // "remote" or "cache"
	URL      string
	LoadedAt time.Time
}

// Loader fetches and freezes the holiday set
type Loader struct {
	client *Client
	opts   Options
	log    logger.Logger
}

// NewLoader builds a Loader around a Client
func NewLoader(o Options) *Loader {
	return &Loader{
		client: NewClient(o),
		opts:   o,
		log:    *logger.Named("holidays"),
	}
}

// Load fetches the holiday list and freezes it into a Snapshot. A successful
// remote fetch refreshes the cache file; a failed one falls back to it. When
// both fail the error is returned and the caller aborts startup.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	source := "remote"
	raw, err := l.client.Fetch(ctx)
	if err != nil {
		cached, cacheErr := l.readCache()
		if cacheErr != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "holiday load failed and no cache available")
		}
		l.log.Warn().Err(err).Str("cache", l.opts.CacheFile).Msg("holiday fetch failed, using cached list")
		raw, source = cached, "cache"
	}

	var dates []string
	if err := json.Unmarshal(raw, &dates); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "holiday payload is not a JSON array of dates")
	}

	set, rejected := calendar.NewHolidaySet(dates)
	for _, r := range rejected {
		l.log.Warn().Str("entry", r).Msg("dropping malformed holiday entry")
	}
	if set.Len() == 0 {
		return nil, perr.Unavailablef("holiday list from %s is empty", source)
	}

	if source == "remote" {
		l.writeCache(raw)
	}

	l.log.Info().Int("count", set.Len()).Str("source", source).Msg("holiday set loaded")
	return &Snapshot{
		Set:      set,
		Source:   source,
		URL:      l.opts.URL,
		LoadedAt: time.Now().UTC(),
	}, nil
}

func (l *Loader) readCache() ([]byte, error) {
	if l.opts.CacheFile == "" {
		return nil, perr.NotFoundf("no cache file configured")
	}
	return os.ReadFile(l.opts.CacheFile)
}

// writeCache is best effort; a cache write failure never fails a load
func (l *Loader) writeCache(raw []byte) {
	if l.opts.CacheFile == "" {
		return
	}
	if err := os.WriteFile(l.opts.CacheFile, raw, 0o644); err != nil {
		l.log.Warn().Err(err).Str("cache", l.opts.CacheFile).Msg("failed to write holiday cache")
	}
}
