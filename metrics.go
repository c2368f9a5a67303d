package litepager

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts pager decisions. A nil *Metrics is valid and records nothing.
type Metrics struct {
	FetchLimits *prometheus.CounterVec
	Pages       *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		FetchLimits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "litepager",
				Name:      "fetch_limits_total",
				Help:      "Fetch limits computed, by whether the page ceiling was reached",
			},
			[]string{"ceiling"},
		),
		Pages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "litepager",
				Name:      "pages_processed_total",
				Help:      "Result pages post-processed, by whether a sentinel row revealed a next page",
			},
			[]string{"has_next"},
		),
	}

	for _, c := range []prometheus.Collector{m.FetchLimits, m.Pages} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeFetchLimit(ceiling bool) {
	if m == nil {
		return
	}

	m.FetchLimits.WithLabelValues(strconv.FormatBool(ceiling)).Inc()
}

func (m *Metrics) observePage(hasNext bool) {
	if m == nil {
		return
	}

	m.Pages.WithLabelValues(strconv.FormatBool(hasNext)).Inc()
}
