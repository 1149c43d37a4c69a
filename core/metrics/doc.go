// Package metrics registers the application's Prometheus metrics and exposes
// them on /metrics.
//
// Request counts and latency come from the Middleware; the domain counters
// (guides by mode, retrieved chunks, illustration results) are incremented at
// the point where the outcome is decided. The Handler adapts fiber's
// fasthttp-backed context to net/http so the stock promhttp exposition
// handler can be reused unchanged.
package metrics
