package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Gauge interface {
	Set(value float64, labels ...string)
	Reset()
}

type Counters struct {
	UpstreamRequests Counter
	LogsRegistered   Counter
	AlertTransitions Counter

	ActiveAlerts Gauge
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	return &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

type PrometheusGauge struct {
	gauge *prometheus.GaugeVec
}

func newPrometheusGauge(name, help string, labels []string) *PrometheusGauge {
	return &PrometheusGauge{
		gauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		}, labels),
	}
}

func (p *PrometheusGauge) Set(value float64, labels ...string) {
	p.gauge.WithLabelValues(labels...).Set(value)
}

func (p *PrometheusGauge) Reset() {
	p.gauge.Reset()
}

func build(reg prometheus.Registerer) *Counters {
	upstream := newPrometheusCounter(
		"upstream_requests_total",
		"Количество запросов к сервису логов",
		[]string{"resource", "status"},
	)
	registered := newPrometheusCounter(
		"logs_registered_total",
		"Количество логов, зарегистрированных через дашборд",
		[]string{"service", "level"},
	)
	transitions := newPrometheusCounter(
		"alert_transitions_total",
		"Количество переходов состояния алертов",
		[]string{"state"},
	)
	active := newPrometheusGauge(
		"active_alerts",
		"Количество активных алертов",
		[]string{"service"},
	)

	reg.MustRegister(upstream.counter, registered.counter, transitions.counter, active.gauge)

	return &Counters{
		UpstreamRequests: upstream,
		LogsRegistered:   registered,
		AlertTransitions: transitions,
		ActiveAlerts:     active,
	}
}

func New() *Counters {
	return build(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the counters on reg instead of the default
// registry.
func NewWithRegistry(reg *prometheus.Registry) *Counters {
	return build(reg)
}

// NewTestCounters returns counters bound to a private registry so tests can
// build them repeatedly.
func NewTestCounters() *Counters {
	return build(prometheus.NewRegistry())
}
