package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("/theme.css", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest("/theme.css", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest("/api/settings", http.StatusBadRequest, time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/theme.css", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/api/settings", "400")))
}

func TestSettingsAndColorCounters(t *testing.T) {
	m := New()
	m.SettingsUpdate(UpdateApplied)
	m.SettingsUpdate(UpdateUnchanged)
	m.SettingsUpdate(UpdateUnchanged)
	m.ColorErrors(3)
	m.StylesheetSize(1024)

	require.Equal(t, 1.0, testutil.ToFloat64(m.settingsUpdates.WithLabelValues(UpdateApplied)))
	require.Equal(t, 2.0, testutil.ToFloat64(m.settingsUpdates.WithLabelValues(UpdateUnchanged)))
	require.Equal(t, 3.0, testutil.ToFloat64(m.colorErrors))
	require.Equal(t, 1024.0, testutil.ToFloat64(m.stylesheetBytes))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.SettingsUpdate(UpdateApplied)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `themekit_settings_updates_total{result="applied"} 1`)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}
