package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpdata/registryd/pkg/codec"
	"github.com/corpdata/registryd/pkg/config"
	"github.com/corpdata/registryd/pkg/match"
	"github.com/corpdata/registryd/pkg/status"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	n := match.NewNormalizer(config.DefaultSuffixes())
	idx := match.BuildIndex(n, []codec.Entity{
		{Name: "PELICAN BAY FOUNDATION INC", DocumentNumber: "M13000010"},
		{Name: "BONITA BAY CLUB INC", DocumentNumber: "M94000000123"},
	})

	report := &status.Report{
		RunID:      "2N3cZvYpXaTqKjW",
		LastUpdate: time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC),
		Outcome:    status.OutcomeSuccess,
		Message:    "indexed 2 entities from 2 records",
		RecordsIn:  2,
		Entities:   2,
	}

	// Metrics register on the global prometheus registry; tests run with
	// them disabled.
	return NewServer(idx, report, ServerConfig{Bind: "127.0.0.1", Port: 8080}, nil)
}

func doRequest(t *testing.T, server *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := Routes(server)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleMatch_Hit(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/match/pelican%20bay%20foundation%20inc.")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "M13000010", resp.DocumentNumber)
	assert.Equal(t, "pelican bay foundation inc.", resp.Name)
}

func TestHandleMatch_Miss(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/match/NO%20SUCH%20ENTITY")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "error")
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHandleStats(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, "/api/v1/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.IndexSize)
	assert.Equal(t, "2N3cZvYpXaTqKjW", resp.RunID)
	assert.Equal(t, 2, resp.RecordsIn)
}

func TestHandleStats_NoReport(t *testing.T) {
	server := newTestServer(t)
	server.report = nil

	rec := doRequest(t, server, "/api/v1/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.IndexSize)
	assert.Empty(t, resp.RunID)
}
