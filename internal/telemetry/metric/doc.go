// Package metric provides Prometheus metrics for auth-tokens.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: registry construction and HTTP handler
//
// Metrics include:
//
//   - Identity decode attempts by result
//   - Failure log lines suppressed by throttling
//
// Metrics are exposed at /metrics in Prometheus format.
package metric
