// Package stats collects per-dataset run counters the driver reports after
// processing every sample (spec.md §6: "statistical counters for the
// driver: correct / stable / unstable / robust / fragile counts per
// dataset"). Collector follows the same separate-mutex-per-concern
// discipline core.Graph uses for its vertex/edge maps, here split between
// the run identity (set once) and the mutable counters (updated per
// sample, potentially from multiple goroutines if a caller parallelizes
// across samples).
package stats
