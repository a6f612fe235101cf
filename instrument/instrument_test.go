package instrument

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Instrument
		err      error
	}{
		{name: "parse_usd", input: "USD", expected: USD},
		{name: "parse_lowercase", input: "eur", expected: EUR},
		{name: "parse_gold_word", input: "Gold", expected: Gold},
		{name: "parse_padded", input: " chf ", expected: CHF},
		{name: "parse_unknown", input: "JPY", err: ErrUnknown},
		{name: "parse_empty", input: "", err: ErrUnknown},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.input)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected error %v, got %v", tc.err, err)
				}

				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestEarliest(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		ins      Instrument
		expected time.Time
	}{
		{
			name:     "currency_earliest",
			ins:      USD,
			expected: time.Date(2002, time.January, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "gold_earliest",
			ins:      Gold,
			expected: time.Date(2013, time.January, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.expected, tc.ins.Earliest()); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	list := All()
	if len(list) != 5 {
		t.Fatalf("expected 5 instruments, got %d", len(list))
	}

	currencies := 0
	for _, ins := range list {
		if ins.IsCurrency() {
			currencies++
		}
	}

	if currencies != 4 {
		t.Errorf("expected 4 currencies, got %d", currencies)
	}
}
