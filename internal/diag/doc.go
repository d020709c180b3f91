// Package diag provides the diagnostics channel used by the normalization
// pipeline.
//
// Normalization never fails on malformed input; instead each degraded or
// defaulted field is reported as a structured diagnostic entry to a Sink.
// Callers decide whether to surface, aggregate, or discard entries.
package diag
