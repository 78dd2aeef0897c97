package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/chargecost/chargecost/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validQuery() url.Values {
	return url.Values{
		"batteryCapacity":      {"60"},
		"initialCharge":        {"20"},
		"finalCharge":          {"80"},
		"startDate":            {"10/03/2021"},
		"startTime":            {"10:00"},
		"chargerConfiguration": {"4"},
		"postcode":             {"3168"},
		"suburb":               {"Clayton"},
	}
}

func TestHandleCost(t *testing.T) {
	est := &mockEstimator{}
	est.On("TotalCost", mock.Anything, mock.MatchedBy(func(s types.ChargingSession) bool {
		return s.Postcode == 3168 && s.StartMinute == 600 && s.ChargerConfig == 4
	})).Return(types.CostResult{
		GrossDollars:        4.5,
		SolarSavingsDollars: 1.088889,
		NetDollars:          3.411111,
	}, nil)

	srv := newTestServer(est)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/cost?"+validQuery().Encode(), nil)
	srv.setupHandler().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "chargecost", w.Header().Get("Server"))

	var resp costResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "$3.41", resp.Display)
	assert.False(t, resp.FullyOffset)
	assert.InDelta(t, 4.5, resp.GrossDollars, 1e-9)
	est.AssertExpectations(t)
}

func TestHandleCostFullyOffset(t *testing.T) {
	est := &mockEstimator{}
	est.On("TotalCost", mock.Anything, mock.Anything).Return(types.CostResult{
		GrossDollars:        3.6,
		SolarSavingsDollars: 3.84,
		FullyOffset:         true,
	}, nil)

	srv := newTestServer(est)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/cost?"+validQuery().Encode(), nil)
	srv.setupHandler().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp costResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.FullyOffset)
	assert.Equal(t, "$0.00 as energy received from solar panels was greater than energy consumed!", resp.Display)
	assert.Equal(t, 0.0, resp.NetDollars)
}

func TestHandleCostErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid postcode", types.ErrInvalidPostcode, http.StatusBadRequest},
		{"unknown suburb", types.ErrLocationNotFound, http.StatusBadRequest},
		{"upstream down", types.ErrUpstreamUnavailable, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := &mockEstimator{}
			est.On("TotalCost", mock.Anything, mock.Anything).Return(nil, tt.err)

			srv := newTestServer(est)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/cost?"+validQuery().Encode(), nil)
			srv.setupHandler().ServeHTTP(w, r)

			require.Equal(t, tt.code, w.Code)
			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleCostInvalidForm(t *testing.T) {
	est := &mockEstimator{}
	srv := newTestServer(est)

	q := validQuery()
	q.Set("finalCharge", "10")
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/cost?"+q.Encode(), nil)
	srv.setupHandler().ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	est.AssertNotCalled(t, "TotalCost")
}

func TestHandleTime(t *testing.T) {
	est := &mockEstimator{}
	est.On("TotalTime", mock.Anything).Return("3 hours and 16 minutes and 21 seconds.")

	srv := newTestServer(est)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/time?"+validQuery().Encode(), nil)
	srv.setupHandler().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp timeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "3 hours and 16 minutes and 21 seconds.", resp.Duration)
}

func TestHandleHealthz(t *testing.T) {
	srv := newTestServer(&mockEstimator{})
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	srv.setupHandler().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(&mockEstimator{})
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	srv.setupHandler().ServeHTTP(w, r)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(&mockEstimator{})
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodOptions, "/api/v1/cost", nil)
	r.Header.Set("Origin", "http://example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodGet)
	srv.setupHandler().ServeHTTP(w, r)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
