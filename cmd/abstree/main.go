// Command abstree drives stability analysis over a dataset: for each
// sample it builds an adversarial region, derives a hyperrectangle, and
// runs the best-first stability verifier, printing a verdict per sample
// and a summary of the run's counters (spec.md §6).
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
