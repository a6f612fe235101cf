// Package validate enforces the request invariants the fetch service itself
// deliberately does not: callers reject bad ranges before any network call
// happens. All violations are reported at once so the UI can show the whole
// list, not just the first problem.
package validate

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/kantorfx/kantor"
	"github.com/kantorfx/kantor/instrument"
)

// DefaultMaxRangeDays is the widest range the upstream API accepts.
const DefaultMaxRangeDays = 367

var (
	ErrStartAfterEnd  = errors.New("start date is after end date")
	ErrRangeTooLong   = errors.New("date range too large")
	ErrBeforeEarliest = errors.New("start date predates available data")
)

// Request checks a fetch request against the caller-enforced limits. A nil
// return means the request may be forwarded to the fetch service.
func Request(req kantor.FetchRequest, maxRangeDays int) error {
	var merr *multierror.Error

	ins, err := instrument.Parse(req.Instrument.String())
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if req.Start.After(req.End) {
		merr = multierror.Append(merr, fmt.Errorf("%w: %s > %s",
			ErrStartAfterEnd, req.Start.Format("2006-01-02"), req.End.Format("2006-01-02")))
	} else {
		days := int(req.End.Sub(req.Start).Hours() / 24)
		if days > maxRangeDays {
			merr = multierror.Append(merr, fmt.Errorf("%w: maximum %d days allowed, current range: %d days",
				ErrRangeTooLong, maxRangeDays, days))
		}
	}

	if err == nil && req.Start.Before(ins.Earliest()) {
		merr = multierror.Append(merr, fmt.Errorf("%w: %s data starts at %s",
			ErrBeforeEarliest, ins, ins.Earliest().Format("2006-01-02")))
	}

	return merr.ErrorOrNil()
}
