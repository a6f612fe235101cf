package kantor

import "time"

// Rate is one (effective date, value) observation. Values are PLN: the mid
// exchange rate for currencies, the price of one gram for gold.
type Rate struct {
	Date  time.Time
	Value float64
}

// RateSeries is the caller-owned result of a successful fetch: unique dates
// in strictly ascending order, regardless of the order the upstream API
// returned records in.
type RateSeries []Rate

// Dates returns the effective dates in series order.
func (s RateSeries) Dates() []time.Time {
	dates := make([]time.Time, len(s))
	for i, r := range s {
		dates[i] = r.Date
	}

	return dates
}

// Values returns the observed values in series order.
func (s RateSeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, r := range s {
		values[i] = r.Value
	}

	return values
}

// Summary holds the statistics the dashboard shows above the table.
type Summary struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// Summarize computes count, min, max and the arithmetic mean of the values.
// Defined for non-empty series only; an empty series yields the zero Summary.
func (s RateSeries) Summarize() Summary {
	if len(s) == 0 {
		return Summary{}
	}

	sum := Summary{
		Count: len(s),
		Min:   s[0].Value,
		Max:   s[0].Value,
	}

	var total float64
	for _, r := range s {
		if r.Value < sum.Min {
			sum.Min = r.Value
		}
		if r.Value > sum.Max {
			sum.Max = r.Value
		}
		total += r.Value
	}

	sum.Mean = total / float64(sum.Count)

	return sum
}
