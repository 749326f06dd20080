package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStoreObserverCounters(t *testing.T) {
	m := NewMetricsRegistry(prometheus.NewRegistry())

	m.StoreSaved("notes", "remote")
	m.StoreFellBack("notes", "remote")
	m.StoreFellBack("notes", "remote")
	m.StoreLoadFailed("custom_items", "remote")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreSavesTotal.WithLabelValues("notes", "remote")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StoreFallbacksTotal.WithLabelValues("notes", "remote")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreLoadFailuresTotal.WithLabelValues("custom_items", "remote")))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewMetricsRegistry(prometheus.NewRegistry())
	b := NewMetricsRegistry(prometheus.NewRegistry())

	a.LoginAttempted("success")
	assert.Equal(t, 1.0, testutil.ToFloat64(a.LoginAttemptsTotal.WithLabelValues("success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.LoginAttemptsTotal.WithLabelValues("success")))
}
