// Package tier narrows a Hyperrectangle to respect one-hot categorical
// feature groups after a refinement step clamps a tiered feature to 0 or 1
// (spec.md §4.7), avoiding spurious counter-examples that would assign two
// categorical values simultaneously.
package tier
