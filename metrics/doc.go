// Package metrics exposes Prometheus instruments for solver runs.
//
// A Collector is registered against a caller-supplied prometheus.Registerer
// so tests and embedding programs can use private registries. A nil
// *Collector is valid and records nothing.
package metrics
