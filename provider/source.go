// Package provider declares the contract between the kantor facade and the
// upstream data sources, together with the failure taxonomy every source
// must map its errors onto.
package provider

import (
	"context"
	"time"

	"github.com/kantorfx/kantor/instrument"
)

// Source is an interface for getting data from external sources. Source takes
// care of performing the network call and decoding the body into observations.
//
//go:generate mockgen -source source.go -destination mock_source.go -package provider
type Source interface {
	// FetchRange fetches every (date, value) record the upstream has for the
	// instrument between start and end inclusive. Implementations perform
	// exactly one outbound call per invocation and do not retry.
	FetchRange(ctx context.Context, ins instrument.Instrument, start, end time.Time) ([]Observation, error)

	// Supported declares which instruments the source can serve.
	Supported() []instrument.Instrument
}

// Observation represents a single dated value reported by the upstream API.
type Observation interface {
	// Date - the effective date the value applies to
	Date() time.Time
	// Value - mid exchange rate in PLN, or gold price in PLN per gram
	Value() float64
}
