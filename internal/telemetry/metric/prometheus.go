// Package metric provides Prometheus metrics for auth-tokens.
package metric

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace prefixes all metric names.
const DefaultNamespace = "authtokens"

// Result label values recorded by RecordDecode alongside the decode
// failure kinds.
const (
	// ResultOK marks a decode that produced an identity.
	ResultOK = "ok"

	// ResultBadHeader marks a credential rejected before decoding,
	// because the Authorization header was not a usable bearer token.
	ResultBadHeader = "bad_header"
)

// Registry holds all identity decode metrics.
type Registry struct {
	// gatherer serves Handler scrapes; nil when the backing Registerer
	// cannot be gathered from directly.
	gatherer prometheus.Gatherer

	// DecodeOutcomes counts identity decode attempts by result.
	DecodeOutcomes *prometheus.CounterVec

	// LogsThrottled counts decode failure log lines suppressed by
	// rate limiting.
	LogsThrottled prometheus.Counter
}

// NewRegistry creates a metrics registry backed by a private Prometheus
// registry, exposed via its Handler method.
func NewRegistry() *Registry {
	return NewRegistryWith(prometheus.NewRegistry(), DefaultNamespace)
}

// NewRegistryWith creates a metrics registry registered into an existing
// Registerer under the given namespace. When reg can also be gathered
// from, as a *prometheus.Registry can, the Handler method serves it;
// for opaque Registerers exposition is the owner's concern.
//
// This should be called once per Registerer during initialization;
// registering the same namespace twice panics.
func NewRegistryWith(reg prometheus.Registerer, namespace string) *Registry {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	r := &Registry{
		DecodeOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_decode_total",
			Help:      "Identity decode attempts by result",
		}, []string{"result"}),
		LogsThrottled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_throttled_logs_total",
			Help:      "Decode failure log lines suppressed by rate limiting",
		}),
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		r.gatherer = g
	}

	reg.MustRegister(r.DecodeOutcomes, r.LogsThrottled)
	return r
}

// global is the shared registry used when callers do not supply one.
var global = sync.OnceValue(NewRegistry)

// Global returns the shared metrics registry.
func Global() *Registry {
	return global()
}

// RecordDecode records one identity decode attempt.
// Safe to call on a nil receiver.
func (r *Registry) RecordDecode(result string) {
	if r == nil {
		return
	}
	r.DecodeOutcomes.WithLabelValues(result).Inc()
}

// IncThrottledLog records one suppressed decode failure log line.
// Safe to call on a nil receiver.
func (r *Registry) IncThrottledLog() {
	if r == nil {
		return
	}
	r.LogsThrottled.Inc()
}

// Handler returns an HTTP handler for a /metrics endpoint serving this
// registry. When the backing Registerer cannot be gathered from, the
// handler for the default Prometheus registry is returned instead.
func (r *Registry) Handler() http.Handler {
	if r.gatherer != nil {
		return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
	}
	return Handler()
}

// Handler returns an HTTP handler for the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
