package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kantorfx/kantor"
	"github.com/kantorfx/kantor/instrument"
	"github.com/kantorfx/kantor/internal/logging"
	"github.com/kantorfx/kantor/internal/validate"
)

const dateLayout = "2006-01-02"

type ratePayload struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type summaryPayload struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
}

type ratesPayload struct {
	Instrument string         `json:"instrument"`
	Name       string         `json:"name"`
	Start      string         `json:"start"`
	End        string         `json:"end"`
	Rates      []ratePayload  `json:"rates"`
	Summary    summaryPayload `json:"summary"`
}

type instrumentPayload struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Earliest string `json:"earliest"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInstruments(w http.ResponseWriter, r *http.Request) {
	list := s.fetcher.Instruments()

	payload := make([]instrumentPayload, 0, len(list))
	for _, ins := range list {
		kind := "currency"
		if !ins.IsCurrency() {
			kind = "gold"
		}

		payload = append(payload, instrumentPayload{
			Symbol:   ins.String(),
			Name:     ins.Name(),
			Kind:     kind,
			Earliest: ins.Earliest().Format(dateLayout),
		})
	}

	respondJSON(w, http.StatusOK, payload)
}

func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	ins, err := instrument.Parse(chi.URLParam(r, "instrument"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	start, end, err := parseRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := kantor.FetchRequest{Instrument: ins, Start: start, End: end}

	if err := validate.Request(req, s.cfg.Limits.MaxRangeDays); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	series, err := s.fetcher.Fetch(ctx, req)
	kind := kantor.KindOf(err)
	s.observeFetch(ins, kind)

	if err != nil {
		logger.Warn("fetch failed", "instrument", ins.String(), "kind", string(kind), "error", err)
		respondError(w, statusFor(kind), fetchFailureMessage(ins))
		return
	}

	rates := make([]ratePayload, 0, len(series))
	for _, rate := range series {
		rates = append(rates, ratePayload{Date: rate.Date.Format(dateLayout), Value: rate.Value})
	}

	sum := series.Summarize()

	respondJSON(w, http.StatusOK, ratesPayload{
		Instrument: ins.String(),
		Name:       ins.Name(),
		Start:      start.Format(dateLayout),
		End:        end.Format(dateLayout),
		Rates:      rates,
		Summary:    summaryPayload{Count: sum.Count, Min: sum.Min, Max: sum.Max, Mean: sum.Mean},
	})
}

// parseRange reads the start/end query parameters. When absent the dashboard
// default applies: the last year up to today.
func parseRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC().Truncate(24 * time.Hour)

	end := now
	if raw := r.URL.Query().Get("end"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q, use YYYY-MM-DD", raw)
		}

		end = t
	}

	start := end.AddDate(-1, 0, 0)
	if raw := r.URL.Query().Get("start"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q, use YYYY-MM-DD", raw)
		}

		start = t
	}

	return start, end, nil
}

func (s *Server) observeFetch(ins instrument.Instrument, kind kantor.FailureKind) {
	result := "success"
	if kind != kantor.FailureNone {
		result = string(kind)
	}

	s.metrics.FetchesTotal.WithLabelValues(ins.String(), result).Inc()
}

func statusFor(kind kantor.FailureKind) int {
	switch kind {
	case kantor.FailureEmptyResult:
		return http.StatusNotFound
	case kantor.FailureNetwork, kantor.FailureParse, kantor.FailureMissingField:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func fetchFailureMessage(ins instrument.Instrument) string {
	if !ins.IsCurrency() {
		return "failed to fetch gold prices, check your date range and try again"
	}

	return fmt.Sprintf("failed to fetch %s exchange rates, check your date range and try again", ins)
}

func respondJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.DefaultLogger().Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}
