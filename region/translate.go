package region

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/abstree/interval"
)

// ToHyperrectangle implements the perturbation→hyperrectangle contract of
// spec.md §6. src is only consulted when r.Perturbation.Kind is
// FromStream; it may be nil otherwise.
func (r *AdversarialRegion) ToHyperrectangle(src io.Reader) (interval.Hyperrectangle, error) {
	switch r.Perturbation.Kind {
	case LInf:
		return r.linf(), nil
	case LInfClip:
		return r.linfClip(), nil
	case FromStream:
		return r.fromStream(src)
	default:
		return interval.Hyperrectangle{}, fmt.Errorf("region: %w: unknown perturbation kind", ErrMalformedRegion)
	}
}

func (r *AdversarialRegion) linf() interval.Hyperrectangle {
	radius := r.Perturbation.Radius
	dims := make([]interval.Interval, len(r.Sample))
	for i, xi := range r.Sample {
		dims[i] = interval.Interval{L: xi - radius, U: xi + radius}
	}

	return interval.NewHyperrectangle(dims)
}

func (r *AdversarialRegion) linfClip() interval.Hyperrectangle {
	radius, lo, hi := r.Perturbation.Radius, r.Perturbation.Lo, r.Perturbation.Hi
	dims := make([]interval.Interval, len(r.Sample))
	for i, xi := range r.Sample {
		dims[i] = interval.Interval{
			L: math.Max(xi-radius, lo),
			U: math.Min(xi+radius, hi),
		}
	}

	return interval.NewHyperrectangle(dims)
}

// fromStream reads n whitespace-separated "[l,u]" tokens, matching the
// bracketed-pair shape of the persisted counter-example format in
// spec.md §6, and fails with ErrMalformedRegion on any parse error or
// short read.
func (r *AdversarialRegion) fromStream(src io.Reader) (interval.Hyperrectangle, error) {
	if src == nil {
		return interval.Hyperrectangle{}, fmt.Errorf("%w: nil stream", ErrMalformedRegion)
	}
	n := len(r.Sample)
	dims := make([]interval.Interval, 0, n)

	scanner := bufio.NewScanner(src)
	scanner.Split(bufio.ScanWords)
	for len(dims) < n {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return interval.Hyperrectangle{}, fmt.Errorf("%w: %v", ErrMalformedRegion, err)
			}

			return interval.Hyperrectangle{}, fmt.Errorf("%w: expected %d pairs, got %d", ErrMalformedRegion, n, len(dims))
		}
		var l, u float64
		if _, err := fmt.Sscanf(scanner.Text(), "[%g,%g]", &l, &u); err != nil {
			return interval.Hyperrectangle{}, fmt.Errorf("%w: %v", ErrMalformedRegion, err)
		}
		if l > u {
			return interval.Hyperrectangle{}, fmt.Errorf("%w: bad bounds [%g,%g]", ErrMalformedRegion, l, u)
		}
		dims = append(dims, interval.Interval{L: l, U: u})
	}

	return interval.NewHyperrectangle(dims), nil
}
