package litepager

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func Test_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg, "test")
	require.NoError(t, err)

	p, err := NewLitePager(Config{ItemsPerPage: 2, TotalPages: 2})
	require.NoError(t, err)
	p = p.WithMetrics(m)

	p.ComputeFetchLimit()
	PostProcess(p, []int{1, 2, 3})
	p.WithCurrentPage(1).ComputeFetchLimit()
	PostProcess(p, []int{4, 5})

	require.Equal(t, 1.0, testutil.ToFloat64(m.FetchLimits.WithLabelValues("false")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.FetchLimits.WithLabelValues("true")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Pages.WithLabelValues("true")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Pages.WithLabelValues("false")))
}

func Test_NewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg, "dup")
	require.NoError(t, err)

	_, err = NewMetrics(reg, "dup")
	require.Error(t, err)
}

func Test_Metrics_Nil(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.observeFetchLimit(true)
		m.observePage(false)
	})
}
