// Package region converts an adversarial perturbation specification (an
// L∞ ball, a clipped L∞ ball, or an externally supplied interval box read
// from a stream) plus a reference sample into the Hyperrectangle the
// verifier searches (spec.md §3, §6).
package region
