package metric

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus registers a counter or histogram vector on the first use of a key.
// Every use of a key must carry the same label names, mismatching calls are dropped.
type Prometheus struct {
	registry *prometheus.Registry
	vectors  *vectors
	labels   Labels
}

type vectors struct {
	namespace  string
	registry   *prometheus.Registry
	mutex      sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

func NewPrometheus(namespace string) *Prometheus {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Prometheus{
		registry: registry,
		vectors: &vectors{
			namespace:  namespace,
			registry:   registry,
			counters:   make(map[string]*prometheus.CounterVec),
			histograms: make(map[string]*prometheus.HistogramVec),
		},
	}
}

func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

func (p *Prometheus) With(labels Labels) Metrics {
	if len(labels) == 0 {
		return p
	}

	return &Prometheus{
		registry: p.registry,
		vectors:  p.vectors,
		labels:   p.labels.merge(labels),
	}
}

func (p *Prometheus) WithLabel(name, value string) Metrics {
	return p.With(Labels{name: value})
}

func (p *Prometheus) Increment(key string) {
	counter, err := p.vectors.counter(key, p.labelNames()).GetMetricWith(prometheus.Labels(p.labels))
	if err != nil {
		return
	}

	counter.Inc()
}

func (p *Prometheus) Duration(key string, duration time.Duration) {
	histogram, err := p.vectors.histogram(key, p.labelNames()).GetMetricWith(prometheus.Labels(p.labels))
	if err != nil {
		return
	}

	histogram.Observe(duration.Seconds())
}

func (p *Prometheus) labelNames() []string {
	names := make([]string, 0, len(p.labels))
	for name := range p.labels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (v *vectors) counter(key string, labelNames []string) *prometheus.CounterVec {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	if counter, ok := v.counters[key]; ok {
		return counter
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: v.namespace,
		Name:      key,
		Help:      key,
	}, labelNames)
	v.registry.MustRegister(counter)
	v.counters[key] = counter

	return counter
}

func (v *vectors) histogram(key string, labelNames []string) *prometheus.HistogramVec {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	if histogram, ok := v.histograms[key]; ok {
		return histogram
	}

	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: v.namespace,
		Name:      key,
		Help:      key,
		Buckets:   prometheus.DefBuckets,
	}, labelNames)
	v.registry.MustRegister(histogram)
	v.histograms[key] = histogram

	return histogram
}
