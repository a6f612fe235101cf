// Package kantor is a client for the Narodowy Bank Polski public API. It
// fetches currency exchange rates and gold prices over a date range and
// returns them as a date-ascending series together with a typed failure
// classification for callers that need to tell "upstream had no data" apart
// from "the call failed".
package kantor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kantorfx/kantor/instrument"
	"github.com/kantorfx/kantor/provider"
	"github.com/kantorfx/kantor/provider/nbp"
)

// DefaultRequestTimeout bounds a single upstream round trip.
const DefaultRequestTimeout = 10 * time.Second

// FetchRequest names the instrument and the inclusive date range to fetch.
// The client performs no validation of ordering or span: callers validate
// beforehand (see internal/validate), and an inverted range is answered by
// whatever the upstream replies.
type FetchRequest struct {
	Instrument instrument.Instrument
	Start      time.Time
	End        time.Time
}

type Option func(*Client)

// WithRequestTimeout overrides the per-fetch timeout.
func WithRequestTimeout(t time.Duration) Option {
	return func(c *Client) {
		c.opts.RequestTimeout = t
	}
}

// WithBaseURL points the default NBP source at another base URL.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		c.opts.BaseURL = raw
	}
}

// WithSource replaces the data source entirely.
func WithSource(s provider.Source) Option {
	return func(c *Client) {
		c.source = s
	}
}

type Options struct {
	RequestTimeout time.Duration
	BaseURL        string
}

type Client struct {
	opts   Options
	source provider.Source
}

// New returns a Client backed by the NBP source over the given HTTP client.
func New(client *http.Client, opts ...Option) *Client {
	c := &Client{
		opts: Options{RequestTimeout: DefaultRequestTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.source == nil {
		var sourceOpts []nbp.Option
		if c.opts.BaseURL != "" {
			sourceOpts = append(sourceOpts, nbp.WithBaseURL(c.opts.BaseURL))
		}

		c.source = nbp.NewSource(client, sourceOpts...)
	}

	return c
}

// Instruments returns what the underlying source can serve.
func (c *Client) Instruments() []instrument.Instrument {
	return c.source.Supported()
}

// Fetch performs one fetch attempt for the request and returns the resulting
// series. Each invocation is independent and stateless: no data is cached,
// nothing is retried, and the only cancellation path beyond the caller's
// context is the request timeout firing.
func (c *Client) Fetch(ctx context.Context, req FetchRequest) (RateSeries, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()

	list, err := c.source.FetchRange(ctx, req.Instrument, req.Start, req.End)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", req.Instrument, err)
	}

	series := make(RateSeries, len(list))
	for i, o := range list {
		series[i] = Rate{Date: o.Date(), Value: o.Value()}
	}

	return series, nil
}

// FailureKind is the terminal classification of a failed fetch.
type FailureKind string

const (
	FailureNone         FailureKind = ""
	FailureNetwork      FailureKind = "network_error"
	FailureParse        FailureKind = "parse_error"
	FailureMissingField FailureKind = "missing_field"
	FailureEmptyResult  FailureKind = "empty_result"
	FailureUnknown      FailureKind = "unknown"
)

// KindOf maps an error returned by Fetch onto the failure taxonomy.
func KindOf(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, provider.ErrEmptyResult):
		return FailureEmptyResult
	case errors.Is(err, provider.ErrMissingField):
		return FailureMissingField
	case errors.Is(err, provider.ErrParse):
		return FailureParse
	case errors.Is(err, provider.ErrNetwork):
		return FailureNetwork
	default:
		return FailureUnknown
	}
}
