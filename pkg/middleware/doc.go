// Package middleware provides the HTTP middleware used by the tips server.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus metrics middleware
//   - Structured request logging
//
// # OpenTelemetry Middleware
//
// The OpenTelemetry middleware starts a server span for every request. The
// span is named after the matched chi route pattern so that paths with
// parameters do not explode span cardinality.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("tips"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The tracer comes from the global provider unless WithTracerProvider is
// given. Configure the provider in main() before starting the server.
//
// # Prometheus Metrics
//
// NewMetrics registers the collectors once on the configured registerer:
//   - tips_http_requests_total: requests by route, method and status code
//   - tips_http_request_duration_seconds: request duration histogram
//   - tips_active_mounts: currently mounted websocket hosts
//   - tips_mounts_total: total mounts served
//   - tips_websocket_errors_total: websocket errors by type
//
//	m := middleware.NewMetrics(middleware.WithNamespace("tips"))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.Handler())
//
// # Request Logging
//
//	r.Use(middleware.RequestLogger(logger))
package middleware
