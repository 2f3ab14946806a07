// Package forest models an ordered ensemble of decision trees sharing a
// label set and a voting scheme, and implements the per-scheme score
// overapproximation the verifier's best-first search is built on.
//
// A voting scheme is modeled as an enum plus a switch at the single
// entrypoint (ScoreOverapproximation / Classify) rather than a function
// pointer or strategy interface: SPEC_FULL.md §9 replaces "function
// pointers selecting a voting scheme" with this idiom specifically so the
// compiler can specialize the hot inner loops per scheme.
package forest
