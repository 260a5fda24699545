// Package metrics exposes conversion statistics in the Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tartampluch/go-vivace/internal/config"
)

// Collector owns a private registry with the application collectors.
// It satisfies engine.Recorder.
type Collector struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	feedBuilds  prometheus.Counter
}

// New registers the counters, plus a gauge reading cachedYears on scrape.
// cachedYears may be nil.
func New(cachedYears func() int) *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	c := &Collector{
		registry: registry,
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.MetricsNamespace,
				Name:      config.MetricConversions,
				Help:      config.MetricConversionsHlp,
			},
			[]string{config.MetricLabelSystem},
		),
		feedBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricFeedBuilds,
			Help:      config.MetricFeedBuildsHlp,
		}),
	}
	registry.MustRegister(c.conversions, c.feedBuilds)

	if cachedYears != nil {
		registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: config.MetricsNamespace,
				Name:      config.MetricCachedYears,
				Help:      config.MetricCachedYearsHlp,
			},
			func() float64 { return float64(cachedYears()) },
		))
	}
	return c
}

// Conversion counts one converted date for system.
func (c *Collector) Conversion(system string) {
	c.conversions.WithLabelValues(system).Inc()
}

// FeedBuilt counts one iCalendar generation.
func (c *Collector) FeedBuilt() {
	c.feedBuilds.Inc()
}

// Registry returns the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the text exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
