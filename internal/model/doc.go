// Package model defines the core data types shared across uxscan:
// the page snapshot captured by the browser collaborator, per-principle
// scoring results, and the aggregated audit report.
//
// All types in this package are plain values with no behavior beyond
// construction and lookup helpers. They are immutable by convention once
// produced: evaluators receive a snapshot and never modify it, and a
// report is only assembled once per run.
package model
