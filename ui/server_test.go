package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edujbarrios/real-iop-estimator/app"
	"github.com/edujbarrios/real-iop-estimator/domain/estimate"
	"github.com/edujbarrios/real-iop-estimator/internal"
	"github.com/edujbarrios/real-iop-estimator/internal/config"
	"github.com/edujbarrios/real-iop-estimator/internal/errors"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Server.GinMode = "test"

	server, err := NewServer(cfg, app.NewEstimationService(cfg), internal.NewLogger(internal.LogLevelError))
	require.NoError(t, err)
	return server
}

func postEstimate(t *testing.T, server *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/estimate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func TestEstimateEndpoint_OK(t *testing.T) {
	rec := postEstimate(t, newTestServer(t), `{"readings": "12, 14, 13, 15, 12"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var report estimate.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 13.0, report.SafeIOP)
	assert.Equal(t, estimate.CategoryNormal, report.Interpretation)
	assert.Equal(t, 5, report.NMeasurements)
}

func TestEstimateEndpoint_FieldNames(t *testing.T) {
	rec := postEstimate(t, newTestServer(t), `{"readings": "12, 14, 13"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	for _, name := range []string{
		"safe_iop", "possible_iop", "clinical_iop", "mean_iop",
		"trimean_iop", "iqm_iop", "winsorized_iop", "weighted_iop",
		"min_iop", "max_iop", "variability", "std_dev", "n_measurements",
		"interpretation", "status", "confidence", "confidence_note",
	} {
		assert.Contains(t, fields, name)
	}
}

func TestEstimateEndpoint_ValidationErrors(t *testing.T) {
	server := newTestServer(t)

	cases := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"malformed token", `{"readings": "10, abc, 12"}`, errors.CodeParseError},
		{"out of range", `{"readings": "10, 12, 150"}`, errors.CodeRangeError},
		{"too few", `{"readings": "10, 12"}`, errors.CodeInsufficientData},
		{"missing field", `{}`, errors.CodeParseError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postEstimate(t, server, tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp struct {
				Error string `json:"error"`
				Code  string `json:"code"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestIndexPage(t *testing.T) {
	server := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Real IOP Estimator")
}
