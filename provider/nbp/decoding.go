package nbp

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/kantorfx/kantor/provider"
)

const dateLayout = "2006-01-02"

// decodeFunc turns a raw response body into dated records. The two NBP
// endpoint shapes each get their own implementation.
type decodeFunc func(b []byte) ([]record, error)

type record struct {
	date  string
	value float64
}

// currency endpoint body: {"rates":[{"effectiveDate":"...","mid":N},...]}
type ratesResponse struct {
	Rates []rateRecord `json:"rates"`
}

// Pointer fields keep "key absent" distinguishable from a zero value.
type rateRecord struct {
	EffectiveDate *string  `json:"effectiveDate"`
	Mid           *float64 `json:"mid"`
}

// gold endpoint body: [{"data":"...","cena":N},...]
type goldRecord struct {
	Date  *string  `json:"data"`
	Price *float64 `json:"cena"`
}

func decodeRates(b []byte) ([]record, error) {
	var payload ratesResponse
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrParse, err)
	}

	if len(payload.Rates) == 0 {
		return nil, provider.ErrEmptyResult
	}

	records := make([]record, 0, len(payload.Rates))
	for _, r := range payload.Rates {
		if r.EffectiveDate == nil || r.Mid == nil {
			return nil, fmt.Errorf("%w: want effectiveDate and mid", provider.ErrMissingField)
		}

		records = append(records, record{date: *r.EffectiveDate, value: *r.Mid})
	}

	return records, nil
}

func decodeGold(b []byte) ([]record, error) {
	var payload []goldRecord
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrParse, err)
	}

	if len(payload) == 0 {
		return nil, provider.ErrEmptyResult
	}

	records := make([]record, 0, len(payload))
	for _, r := range payload {
		if r.Date == nil || r.Price == nil {
			return nil, fmt.Errorf("%w: want data and cena", provider.ErrMissingField)
		}

		records = append(records, record{date: *r.Date, value: *r.Price})
	}

	return records, nil
}

// collate deduplicates records by date, the last record in response order
// winning, and returns them date-ascending regardless of response order.
// Lexicographic order of YYYY-MM-DD strings is chronological order.
func collate(records []record) ([]provider.Observation, error) {
	byDate := make(map[string]float64, len(records))
	for _, r := range records {
		byDate[r.date] = r.value
	}

	list := make([]Observation, 0, len(byDate))
	for date, value := range byDate {
		t, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("%w: effective date %q: %v", provider.ErrParse, date, err)
		}

		list = append(list, Observation{date: t, value: value})
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].date.Before(list[j].date)
	})

	out := make([]provider.Observation, len(list))
	for i := range list {
		out[i] = list[i]
	}

	return out, nil
}
