package metrics

import (
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

func TestMetricsInitialization(t *testing.T) {
	m := getTestMetrics()

	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.DBConnectionsOpen)
	assert.NotNil(t, m.DBConnectionsInUse)
	assert.NotNil(t, m.DBConnectionsIdle)
	assert.NotNil(t, m.DBQueryDuration)
	assert.NotNil(t, m.DBQueryErrors)
	assert.NotNil(t, m.SignupsTotal)
	assert.NotNil(t, m.WorkshopsCreatedTotal)
	assert.NotNil(t, m.RegistrationsTotal)
	assert.NotNil(t, m.AttendanceMarkedTotal)
	assert.NotNil(t, m.CertificatesIssuedTotal)
}

func TestRecordHTTPRequest(t *testing.T) {
	m := getTestMetrics()

	m.RecordHTTPRequest("POST", "/workshops/register/:id", 201, 40*time.Millisecond)
	m.RecordHTTPRequest("POST", "/workshops/register/:id", 409, 12*time.Millisecond)

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/workshops/register/:id", "2xx")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/workshops/register/:id", "4xx")))
}

func TestRecordDBQuery_CountsErrors(t *testing.T) {
	m := getTestMetrics()

	m.RecordDBQuery("select", "workshops", 5*time.Millisecond, nil)
	m.RecordDBQuery("insert", "registrations", 3*time.Millisecond, assert.AnError)

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("insert", "registrations")))
	assert.Equal(t, float64(0),
		testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select", "workshops")))
}

func TestUpdateDBStats(t *testing.T) {
	m := getTestMetrics()

	m.UpdateDBStats(sql.DBStats{OpenConnections: 7, InUse: 3, Idle: 4})

	assert.Equal(t, float64(7), testutil.ToFloat64(m.DBConnectionsOpen))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.DBConnectionsInUse))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.DBConnectionsIdle))

	// Values of an unexpected type are ignored
	m.UpdateDBStats("not stats")
	assert.Equal(t, float64(7), testutil.ToFloat64(m.DBConnectionsOpen))
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{409, "4xx"},
		{500, "5xx"},
		{100, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, categorizeStatus(tt.code), "status %d", tt.code)
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/health"))
	assert.True(t, ShouldSkipEndpoint("/ready"))
	assert.False(t, ShouldSkipEndpoint("/workshops"))
}
