package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsAndExposes(t *testing.T) {
	m := New()

	done := m.HTTPStarted()
	done(http.MethodGet, "/catalog", http.StatusOK, 10*time.Millisecond)
	m.ObserveRPC("/catalog.v1.CatalogService/GetProduct", "NotFound", time.Millisecond)
	m.ObserveQuery("list_products", OutcomeOK, 2*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/catalog", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("/catalog.v1.CatalogService/GetProduct", "NotFound")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog_store_query_duration_seconds")
}

func TestMetrics_RegisterDBStatsTwice(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := New()
	require.NoError(t, m.RegisterDBStats(db, "catalog"))
	require.NoError(t, m.RegisterDBStats(db, "catalog"))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.HTTPStarted()("GET", "/", 200, time.Millisecond)
		m.ObserveRPC("m", "OK", time.Millisecond)
		m.ObserveQuery("op", OutcomeError, time.Millisecond)
		_ = m.RegisterDBStats(nil, "catalog")
	})

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
