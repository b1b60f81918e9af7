package metrics

import (
	"testing"
	"time"

	"ignite/config"
	"ignite/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ObserveDispatch(t *testing.T) {
	m := NewTestManager()

	m.ObserveDispatch(entity.DispatchDelivered)
	m.ObserveDispatch(entity.DispatchDelivered)
	m.ObserveDispatch(entity.DispatchPermanentlyInvalid)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterDispatch.WithLabelValues("delivered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterDispatch.WithLabelValues("permanently_invalid")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.CounterDispatch.WithLabelValues("transient_failure")))
}

func TestManager_ObserveRun(t *testing.T) {
	m := NewTestManager()

	m.ObserveRun(1500*time.Millisecond, true)
	m.ObserveRun(time.Second, false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRuns.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRuns.WithLabelValues("false")))
}

func TestNewFromConfig_UsesNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFromConfig(&config.Config{Metrics: &config.MetricsConfig{Namespace: "gym"}}, reg)
	m.ObserveDispatch(entity.DispatchSkipped)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "gym_reminder_dispatch_total")
}
