// The kantor binary fetches one instrument over a date range and prints the
// series as a table with summary statistics, defaulting to the last year of
// USD rates.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/kantorfx/kantor"
	"github.com/kantorfx/kantor/instrument"
	"github.com/kantorfx/kantor/internal/validate"
)

const dateLayout = "2006-01-02"

var (
	flagInstrument = flag.String("instrument", "USD", "instrument to fetch: USD, EUR, CHF, GBP or GOLD")
	flagStart      = flag.String("start", "", "start date, YYYY-MM-DD (default: one year before end)")
	flagEnd        = flag.String("end", "", "end date, YYYY-MM-DD (default: today)")
	flagBaseURL    = flag.String("base-url", "", "override the NBP API base URL")
	flagTimeout    = flag.Duration("timeout", kantor.DefaultRequestTimeout, "request timeout")
	flagMaxDays    = flag.Int("max-days", validate.DefaultMaxRangeDays, "maximum allowed range in days")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "kantor:", err)
		os.Exit(1)
	}
}

func run() error {
	ins, err := instrument.Parse(*flagInstrument)
	if err != nil {
		return err
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	if *flagEnd != "" {
		if end, err = time.Parse(dateLayout, *flagEnd); err != nil {
			return fmt.Errorf("invalid end date %q, use YYYY-MM-DD", *flagEnd)
		}
	}

	start := end.AddDate(-1, 0, 0)
	if *flagStart != "" {
		if start, err = time.Parse(dateLayout, *flagStart); err != nil {
			return fmt.Errorf("invalid start date %q, use YYYY-MM-DD", *flagStart)
		}
	}

	req := kantor.FetchRequest{Instrument: ins, Start: start, End: end}

	if err := validate.Request(req, *flagMaxDays); err != nil {
		return err
	}

	opts := []kantor.Option{kantor.WithRequestTimeout(*flagTimeout)}
	if *flagBaseURL != "" {
		opts = append(opts, kantor.WithBaseURL(*flagBaseURL))
	}

	client := kantor.New(&http.Client{}, opts...)

	fmt.Printf("Fetching %s from %s to %s...\n", ins.Name(), start.Format(dateLayout), end.Format(dateLayout))

	series, err := client.Fetch(context.Background(), req)
	if err != nil {
		return fmt.Errorf("fetch failed (%s): %w", kantor.KindOf(err), err)
	}

	for _, r := range series {
		fmt.Printf("%s  %10.4f PLN\n", r.Date.Format(dateLayout), r.Value)
	}

	sum := series.Summarize()
	fmt.Printf("\nRecords: %d  Min: %.4f  Max: %.4f  Mean: %.4f PLN\n", sum.Count, sum.Min, sum.Max, sum.Mean)

	return nil
}
