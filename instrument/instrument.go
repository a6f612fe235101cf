// Package instrument declares the set of assets the NBP data source can be
// queried for: the table A currencies and the gold price.
package instrument

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknown = errors.New("unknown instrument")

// Instrument selects what is being fetched: a currency code or the gold marker.
type Instrument string

const (
	USD  Instrument = "USD"
	EUR  Instrument = "EUR"
	CHF  Instrument = "CHF"
	GBP  Instrument = "GBP"
	Gold Instrument = "GOLD"
)

// earliest dates with data available upstream
var (
	earliestCurrency = time.Date(2002, time.January, 2, 0, 0, 0, 0, time.UTC)
	earliestGold     = time.Date(2013, time.January, 2, 0, 0, 0, 0, time.UTC)
)

var all = []Instrument{USD, EUR, CHF, GBP, Gold}

var names = map[Instrument]string{
	USD:  "US dollar",
	EUR:  "Euro",
	CHF:  "Swiss franc",
	GBP:  "Pound sterling",
	Gold: "Gold (1 g)",
}

// All returns every supported instrument, currencies first.
func All() []Instrument {
	list := make([]Instrument, len(all))
	copy(list, all)

	return list
}

// Parse maps user input to an Instrument. Matching is case-insensitive and
// accepts "gold" as well as the canonical "GOLD" marker.
func Parse(s string) (Instrument, error) {
	ins := Instrument(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range all {
		if ins == known {
			return known, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknown, s)
}

func (i Instrument) String() string {
	return string(i)
}

// Name returns a human readable description of the instrument.
func (i Instrument) Name() string {
	return names[i]
}

// IsCurrency reports whether the instrument is quoted by the exchange rate
// endpoint. Gold is the only instrument served by the gold price endpoint.
func (i Instrument) IsCurrency() bool {
	return i != Gold
}

// Earliest returns the first date for which the upstream API has data:
// 2002-01-02 for currencies, 2013-01-02 for gold.
func (i Instrument) Earliest() time.Time {
	if i.IsCurrency() {
		return earliestCurrency
	}

	return earliestGold
}
