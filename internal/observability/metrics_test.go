package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/employees", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/employees", "GET", 200, 30*time.Millisecond)
	m.RecordError("/employees/:id", "GET", "NOT_FOUND")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/employees|GET|200"])
	assert.Equal(t, int64(20), snap.AvgLatencyMS["/employees|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/employees/:id|GET|NOT_FOUND"])

	// the snapshot is a copy
	snap.Requests["/employees|GET|200"] = 99
	assert.Equal(t, int64(2), m.Snapshot().Requests["/employees|GET|200"])
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	assert.Empty(t, m.Snapshot().Requests)
}
