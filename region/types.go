package region

// Kind tags the three perturbation variants spec.md §3 defines.
type Kind uint8

const (
	// LInf is an L∞ ball of radius Radius around the reference sample.
	LInf Kind = iota
	// LInfClip is an L∞ ball additionally clamped to [Lo, Hi] per dimension.
	LInfClip
	// FromStream reads an already-computed interval box from a stream.
	FromStream
)

// Perturbation is the tagged-union perturbation specification: exactly one
// of the three spec.md §3 variants, discriminated by Kind.
type Perturbation struct {
	Kind   Kind
	Radius float64
	Lo, Hi float64
}

// NewLInf constructs an L∞(r) perturbation.
func NewLInf(radius float64) (Perturbation, error) {
	if radius < 0 {
		return Perturbation{}, ErrNegativeRadius
	}

	return Perturbation{Kind: LInf, Radius: radius}, nil
}

// NewLInfClip constructs an L∞-clip(r, lo, hi) perturbation.
func NewLInfClip(radius, lo, hi float64) (Perturbation, error) {
	if radius < 0 {
		return Perturbation{}, ErrNegativeRadius
	}
	if lo > hi {
		return Perturbation{}, ErrInvalidClipBounds
	}

	return Perturbation{Kind: LInfClip, Radius: radius, Lo: lo, Hi: hi}, nil
}

// NewFromStream constructs a FromStream perturbation marker; the actual
// interval box is supplied to ToHyperrectangle via an io.Reader.
func NewFromStream() Perturbation {
	return Perturbation{Kind: FromStream}
}

// AdversarialRegion pairs a reference sample with the perturbation that
// defines its neighborhood.
type AdversarialRegion struct {
	Sample       []float64
	Perturbation Perturbation
}

// New validates and constructs an AdversarialRegion.
func New(sample []float64, p Perturbation) (*AdversarialRegion, error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}
	cp := make([]float64, len(sample))
	copy(cp, sample)

	return &AdversarialRegion{Sample: cp, Perturbation: p}, nil
}
