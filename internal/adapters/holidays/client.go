// Package holidays acquires the national holiday list that backs the business
// calendar. The list is fetched once at process startup and frozen into a
// calendar.HolidaySet; a load failure is fatal to startup so the engine never
// runs against a partial set.
package holidays

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "workdays/internal/platform/errors"
	"workdays/internal/platform/logger"
)

const (
	defaultURL       = "https://content.capta.co/Recruitment/WorkingDays.json"
	defaultTimeout   = 10 * time.Second
	defaultUA        = "workdays-api"
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond
)

// Client is a minimal HTTP client for the holiday source with bounded retries
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	sleep func(time.Duration)
}

// NewClient creates a Client with sane defaults filled in
func NewClient(o Options) *Client {
	if o.URL == "" {
		o.URL = defaultURL
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("holidays"),
		sleep: time.Sleep,
	}
}

// Fetch downloads the raw holiday JSON, retrying transient failures with a
// linear backoff. 4xx responses are not retried; they mean the source moved.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			c.sleep(time.Duration(attempt) * c.opts.RetryBase)
		}

		body, retryable, err := c.fetchOnce(ctx)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		c.log.Warn().Err(err).Int("attempt", attempt+1).Msg("holiday fetch failed, retrying")
	}
	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.URL, nil)
	if err != nil {
		return nil, false, perr.Wrap(err, perr.ErrorCodeUnknown, "build holiday request")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, perr.Wrapf(err, perr.ErrorCodeUnavailable, "fetch %s", c.opts.URL)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, true, perr.Wrap(err, perr.ErrorCodeUnavailable, "read holiday body")
		}
		return b, false, nil
	case resp.StatusCode >= 500:
		return nil, true, perr.Unavailablef("holiday source returned %d", resp.StatusCode)
	default:
		return nil, false, perr.Internalf("holiday source returned %d", resp.StatusCode)
	}
}
