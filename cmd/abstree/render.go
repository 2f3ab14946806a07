package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/abstree/interval"
	"github.com/katalvlaran/abstree/stats"
	"github.com/katalvlaran/abstree/verify"
)

var (
	stableColor   = color.New(color.FgGreen, color.Bold)
	unstableColor = color.New(color.FgRed, color.Bold)
	unknownColor  = color.New(color.FgYellow, color.Bold)
)

// renderVerdict prints one sample's outcome, colorized by result.
func renderVerdict(sampleID int, status *verify.StabilityStatus) {
	var c *color.Color
	switch status.Result {
	case verify.Stable:
		c = stableColor
	case verify.Unstable:
		c = unstableColor
	default:
		c = unknownColor
	}
	c.Printf("[%d] %s\n", sampleID, status.Result)

	if status.Result == verify.Unstable {
		fmt.Println(formatCounterExample(sampleID, status.RegionB))
	}
}

// formatCounterExample renders a witness's sub-hyperrectangle in the
// persisted counter-example format spec.md §6 names:
// "<sample_id>: [l0,u0] [l1,u1] ... [l_{n-1},u_{n-1}]".
func formatCounterExample(sampleID int, region interval.Hyperrectangle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:", sampleID)
	for _, dim := range region.Dims {
		fmt.Fprintf(&b, " [%g,%g]", dim.L, dim.U)
	}

	return b.String()
}

// renderSummary prints the run's aggregate counters.
func renderSummary(snap stats.Snapshot) {
	fmt.Printf("total=%d correct=%d stable=%d unstable=%d robust=%d fragile=%d\n",
		snap.Total, snap.Correct, snap.Stable, snap.Unstable, snap.Robust, snap.Fragile)
}
