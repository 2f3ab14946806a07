// Package verify implements the best-first stability search: it refines a
// decorator tree over a forest (or a single tree, treated as a one-member
// forest) and an adversarial region until it can certify STABLE, exhibit an
// UNSTABLE counter-example, or exhaust the per-sample wall-clock budget.
//
// Errors. INVALID_INPUT-class preconditions (bad timeout, dimension
// mismatches) are returned as sentinel errors; a hyperrectangle going
// bottom where the algorithm guarantees it cannot, or reachable-leaf
// enumeration coming back empty on a non-bottom region, are
// INTERNAL_INVARIANT violations and panic rather than return an error —
// there is no meaningful recovery for a broken soundness invariant.
package verify
