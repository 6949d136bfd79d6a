// Package report renders extension.Solution values for people and tools.
//
// WriteText produces a human-readable report: run summary, both adjacency
// matrices, the extended host with additions marked as "orig+added", and
// every mapping as a pattern × host placement matrix. WriteYAML emits the
// same solution as a machine-readable YAML document.
//
// Both write to an io.Writer; opening and naming files is left to callers.
package report
