package promexporter

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type scanLabels struct {
	Command     string `label:"cmd"`
	ResultState string
}

func TestLabelNamesAndValues(t *testing.T) {
	assert.Equal(t, []string{"cmd", "result_state"}, GetLabelNames(scanLabels{}))
	assert.Equal(t, []string{"scan", "ok"}, GetLabelValues(scanLabels{Command: "scan", ResultState: "ok"}))
}

type retryLabels struct {
	Attempt int
	Final   bool
	Backoff time.Duration
}

func TestNonStringLabelValues(t *testing.T) {
	assert.Equal(t, []string{"attempt", "final", "backoff"}, GetLabelNames(retryLabels{}))
	assert.Equal(t, []string{"3", "true", "1.5s"}, GetLabelValues(retryLabels{Attempt: 3, Final: true, Backoff: 1500 * time.Millisecond}))

	vec := NewLabeledCounterVec[retryLabels](prometheus.CounterOpts{Name: "test_retries_total"})
	vec.With(retryLabels{Attempt: 2}).Inc()
	assert.EqualValues(t, 1, testutil.ToFloat64(vec.WithLabelValues("2", "false", "0s")))
}

func TestLabeledCounterVec(t *testing.T) {
	vec := NewLabeledCounterVec[scanLabels](prometheus.CounterOpts{Name: "test_scan_runs_total"})

	vec.With(scanLabels{Command: "scan", ResultState: "ok"}).Inc()
	vec.With(scanLabels{Command: "scan", ResultState: "ok"}).Inc()
	vec.With(scanLabels{Command: "freq", ResultState: "error"}).Add(3)

	assert.EqualValues(t, 2, testutil.ToFloat64(vec.WithLabelValues("scan", "ok")))
	assert.EqualValues(t, 3, testutil.ToFloat64(vec.With(scanLabels{Command: "freq", ResultState: "error"})))
	assert.Equal(t, 2, testutil.CollectAndCount(vec))
}
