// Package nbp fetches currency exchange rates and gold prices from the
// Narodowy Bank Polski public REST API.
//
// Two endpoint shapes are served by the same host: table A mid rates under
// /api/exchangerates/rates/A/{code}/{start}/{end}/ and gold prices under
// /api/cenyzlota/{start}/{end}/.
package nbp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/kantorfx/kantor/instrument"
	"github.com/kantorfx/kantor/provider"
	"github.com/kantorfx/kantor/provider/httputil"
)

const hostname = "api.nbp.pl"

const (
	ratesRawPath = "/api/exchangerates/rates/A"
	goldRawPath  = "/api/cenyzlota"
)

var defaultBaseURL = url.URL{Scheme: "https", Host: hostname}

var _ provider.Source = (*source)(nil)

type Option func(*source)

// WithBaseURL replaces the upstream base URL, mainly for pointing the source
// at a test server. Invalid input leaves the default untouched.
func WithBaseURL(raw string) Option {
	return func(s *source) {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return
		}

		s.base = *u
	}
}

func NewSource(client *http.Client, opts ...Option) *source {
	s := &source{
		base:   defaultBaseURL,
		client: httputil.NewHTTPClient(client),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type source struct {
	base   url.URL
	client httputil.SourceHTTPClient
}

func (s *source) Supported() []instrument.Instrument {
	return instrument.All()
}

// FetchRange performs exactly one GET against the endpoint matching the
// instrument and returns the decoded records date-ascending with duplicate
// dates collapsed. No ordering or span validation happens here: callers
// validate beforehand, and whatever dates arrive are forwarded upstream.
func (s *source) FetchRange(ctx context.Context, ins instrument.Instrument, start, end time.Time) ([]provider.Observation, error) {
	u, decode := s.endpoint(ins, start, end)

	b, err := s.client.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w: %w", ins, provider.ErrNetwork, err)
	}

	records, err := decode(b)
	if err != nil {
		return nil, fmt.Errorf("decode %s response: %w", ins, err)
	}

	list, err := collate(records)
	if err != nil {
		return nil, fmt.Errorf("collate %s records: %w", ins, err)
	}

	return list, nil
}

func (s *source) endpoint(ins instrument.Instrument, start, end time.Time) (url.URL, decodeFunc) {
	from := start.Format(dateLayout)
	to := end.Format(dateLayout)

	u := s.base
	if ins.IsCurrency() {
		u.Path = path.Join(u.Path, ratesRawPath, ins.String(), from, to) + "/"
		return u, decodeRates
	}

	u.Path = path.Join(u.Path, goldRawPath, from, to) + "/"

	return u, decodeGold
}
