// Package middleware provides HTTP instrumentation for the marquee dev
// server.
//
// Both middlewares have the func(http.Handler) http.Handler shape and plug
// into chi with r.Use.
//
// # OpenTelemetry Middleware
//
// OpenTelemetry starts a server span per request, named after the method
// and path, and records the status code and matched chi route:
//
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/metrics"
//	    }),
//	))
//
// # Prometheus Metrics
//
// Prometheus counts requests by route, method and status. The first call
// also registers the build and live-reload metrics, which the rest of the
// program feeds through RecordBuild and the RecordReload* functions:
//
//	r.Use(middleware.Prometheus())
//	r.Handle("/metrics", promhttp.Handler())
//
// Record functions are no-ops until Prometheus has been called, so a
// one-off build pays nothing for them.
package middleware
