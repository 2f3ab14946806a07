// Package queue implements the generic max-priority queue the best-first
// stability search pulls decorators from: container/heap driven, with FIFO
// tiebreaking among equal-priority entries so the search order is
// deterministic (spec.md §4.8).
package queue
