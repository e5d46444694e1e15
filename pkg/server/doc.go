// Package server is the autoform HTTP preview server.
//
// Routes:
//
//	GET  /forms          list the schemas of the configured source
//	GET  /forms/{name}   render a schema as a full HTML page
//	POST /forms/{name}   validate submitted values and re-render with errors
//	POST /render         render a posted JSON or YAML schema as a fragment
//	GET  /components     JSON description of the component registry
//	GET  /ws/preview     live preview over WebSocket
//	GET  /metrics        Prometheus metrics
//	GET  /healthz        liveness
//
// Failures are answered with the JSON error format of internal/errors:
// malformed or invalid input maps to 400, unknown components and
// unresolvable definitions to 422, missing schemas to 404.
//
// Usage:
//
//	forms, _ := source.Open("./forms", source.Options{})
//	srv := server.New(&server.Config{Address: ":8080", Forms: forms})
//	err := srv.ListenAndServe(ctx)
package server
