package tier

import "github.com/katalvlaran/abstree/interval"

// Adjust narrows h to respect the one-hot group containing feature after a
// refinement step has clamped h.Dims[feature] to exactly 0 or 1
// (spec.md §4.7). Callers may invoke it after any clamp of h.Dims[feature];
// Adjust is a no-op when feature is untiered or h.Dims[feature] is not yet
// a degenerate 0/1 interval.
//
// Turning feature on ([1,1]) forces every other feature in its group to
// [0,0]. Turning feature off ([0,0]) forces the group's last remaining
// candidate to [1,1] once every other member is already off. Both
// narrowings are applied via GLB, so a contradiction (e.g. two features
// already forced on in the same group) correctly collapses the affected
// dimension to Bottom rather than silently overwriting it.
func Adjust(h interval.Hyperrectangle, v Vector, feature int) interval.Hyperrectangle {
	if feature < 0 || feature >= len(v) {
		return h
	}
	g := v.GroupOf(feature)
	if g == 0 {
		return h
	}
	dim := h.Dims[feature]

	switch {
	case dim.L == 1 && dim.U == 1:
		return turnOn(h, v, g, feature)
	case dim.L == 0 && dim.U == 0:
		return turnOff(h, v, g, feature)
	default:
		return h
	}
}

func turnOn(h interval.Hyperrectangle, v Vector, g, feature int) interval.Hyperrectangle {
	out := h
	for j, gj := range v {
		if gj != g || j == feature {
			continue
		}
		out = out.WithDim(j, interval.GLB(out.Dims[j], interval.Exact(0)))
	}

	return out
}

func turnOff(h interval.Hyperrectangle, v Vector, g, feature int) interval.Hyperrectangle {
	remaining := -1
	live := 0
	for j, gj := range v {
		if gj != g {
			continue
		}
		d := h.Dims[j]
		if d.L == 0 && d.U == 0 {
			continue
		}
		live++
		remaining = j
	}
	if live != 1 {
		return h
	}

	return h.WithDim(remaining, interval.GLB(h.Dims[remaining], interval.Exact(1)))
}
