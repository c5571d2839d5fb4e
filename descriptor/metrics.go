// SPDX-License-Identifier: MIT

package descriptor

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Calculator's Prometheus collectors. A nil *metrics is a
// valid no-op.
type metrics struct {
	computedTotal  *prometheus.CounterVec
	missingTotal   *prometheus.CounterVec
	cacheHitsTotal prometheus.Counter
	moleculeTime   prometheus.Histogram
}

var _ observer = (*metrics)(nil)

// newMetrics registers the collectors against reg; nil reg disables metrics.
// Registering twice against the same registerer panics, as promauto does.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}
	f := promauto.With(reg)

	return &metrics{
		computedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "moldesc_descriptor_computed_total",
			Help: "Descriptor values computed, by kind",
		}, []string{"kind"}),
		missingTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "moldesc_descriptor_missing_total",
			Help: "Descriptor values that were missing, by kind and reason",
		}, []string{"kind", "reason"}),
		cacheHitsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "moldesc_descriptor_cache_hits_total",
			Help: "Descriptor evaluations answered from the per-molecule cache",
		}),
		moleculeTime: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "moldesc_molecule_duration_seconds",
			Help:    "Time to evaluate all registered descriptors for one molecule",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

func (m *metrics) computed(d Descriptor) {
	if m == nil {
		return
	}
	m.computedTotal.WithLabelValues(d.Kind()).Inc()
}

func (m *metrics) missing(d Descriptor, err *MissingError) {
	if m == nil {
		return
	}
	m.missingTotal.WithLabelValues(d.Kind(), reasonLabel(err)).Inc()
}

func (m *metrics) cacheHit(Descriptor) {
	if m == nil {
		return
	}
	m.cacheHitsTotal.Inc()
}

func (m *metrics) observeDuration(seconds float64) {
	if m == nil {
		return
	}
	m.moleculeTime.Observe(seconds)
}

// reasonLabel keeps the label set bounded to the known reasons.
func reasonLabel(err *MissingError) string {
	for _, r := range []error{
		ErrZeroDivision, ErrInvalidOperation, ErrUndefinedProperty,
		ErrRankOutOfRange, ErrFragmented, ErrEmptyMolecule, ErrNotConverged,
	} {
		if errors.Is(err, r) {
			return r.Error()
		}
	}

	return "other"
}
