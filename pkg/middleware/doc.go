// Package middleware provides the Prometheus and OpenTelemetry
// instrumentation used by the autoform HTTP server.
//
// # Prometheus Metrics
//
// Metrics counts component builds by kind and outcome, and records request
// counts and durations per chi route pattern:
//
//	m := middleware.NewMetrics(
//	    middleware.WithNamespace("autoform"),
//	    middleware.WithRegistry(reg),
//	)
//	f := ui.Default(factory.WithObserver(m))
//	r.Use(m.Handler)
//
// Exposed series (with the default namespace):
//
//	autoform_resolutions_total{kind, outcome}
//	autoform_http_requests_total{route, method, status}
//	autoform_http_request_duration_seconds{route, method}
//	autoform_preview_connections
//	autoform_preview_messages_total{result}
//
// # OpenTelemetry
//
// Tracing starts a server span per request using the global tracer
// provider unless WithTracerProvider is given:
//
//	r.Use(middleware.Tracing(
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
package middleware
