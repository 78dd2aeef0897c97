package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chargecost/chargecost/pkg/log"
	"github.com/chargecost/chargecost/pkg/types"
)

type costResponse struct {
	Display             string  `json:"display"`
	GrossDollars        float64 `json:"grossDollars"`
	SolarSavingsDollars float64 `json:"solarSavingsDollars"`
	NetDollars          float64 `json:"netDollars"`
	FullyOffset         bool    `json:"fullyOffset"`
}

type timeResponse struct {
	Duration string `json:"duration"`
}

func (s *Server) handleCost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, err := parseSessionForm(r.URL.Query())
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.calc.TotalCost(ctx, session)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidPostcode):
			writeJSONError(w, "postcode does not exist", http.StatusBadRequest)
		case errors.Is(err, types.ErrLocationNotFound):
			writeJSONError(w, "suburb not found in region specified by postcode", http.StatusBadRequest)
		case errors.Is(err, types.ErrUpstreamUnavailable):
			writeJSONError(w, "weather or holiday data is currently unavailable", http.StatusServiceUnavailable)
		default:
			log.Ctx(ctx).ErrorContext(ctx, "failed to calculate cost", slog.Any("error", err))
			writeJSONError(w, "failed to calculate cost", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(costResponse{
		Display:             result.String(),
		GrossDollars:        result.GrossDollars,
		SolarSavingsDollars: result.SolarSavingsDollars,
		NetDollars:          result.NetDollars,
		FullyOffset:         result.FullyOffset,
	}); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) handleTime(w http.ResponseWriter, r *http.Request) {
	session, err := parseSessionForm(r.URL.Query())
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(timeResponse{
		Duration: s.calc.TotalTime(session),
	}); err != nil {
		panic(http.ErrAbortHandler)
	}
}
