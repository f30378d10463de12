// Package prometheus renders tickauth metrics in Prometheus text
// exposition format.
//
// [NewPrometheusExporter] accepts a [tickauth.Engine] and exposes an
// [net/http.Handler] that renders every engine counter. Counter names are
// prefixed tickauth_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
