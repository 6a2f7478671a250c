package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/fixtures"
	"github.com/ratulalahy/med-debt-collector/internal/stats"
)

func TestCollector_ObserveRefresh(t *testing.T) {
	c := NewCollector()
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	c.ObserveRefresh(20*time.Millisecond, now, nil)
	c.ObserveRefresh(5*time.Millisecond, now.Add(time.Minute), errors.New("timeout"))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.refreshesTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.refreshesTotal.WithLabelValues("error")))
	assert.Equal(t, float64(now.Unix()), testutil.ToFloat64(c.lastRefresh))
}

func TestCollector_SetPatientsReplacesLabels(t *testing.T) {
	c := NewCollector()
	c.SetPatients(stats.PatientStats{
		ByStatus:           map[domain.PatientStatus]int{domain.PatientActive: 3, domain.PatientPending: 1},
		OutstandingBalance: 1200.5,
	})
	c.SetPatients(stats.PatientStats{
		ByStatus:           map[domain.PatientStatus]int{domain.PatientActive: 2},
		OutstandingBalance: 800,
	})

	assert.Equal(t, 1, testutil.CollectAndCount(c.patientsByStatus))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.patientsByStatus.WithLabelValues("active")))
	assert.Equal(t, 800.0, testutil.ToFloat64(c.outstandingBalance))
}

func TestCollector_FixtureFigures(t *testing.T) {
	c := NewCollector()
	q := stats.Queue(fixtures.Queue())
	c.SetQueue(q)
	c.SetDashboard(domain.DashboardStats{CallsToday: 12, SuccessRate: 41.5})
	c.SetNotifications(2)

	total := 0.0
	for status := range q.ByStatus {
		total += testutil.ToFloat64(c.queueByStatus.WithLabelValues(string(status)))
	}
	assert.Equal(t, float64(q.Total), total)
	assert.Equal(t, 12.0, testutil.ToFloat64(c.callsToday))
	assert.Equal(t, 41.5, testutil.ToFloat64(c.successRate))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.notifications))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.SetNotifications(1)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "collectdesk_active_notifications 1")
}
