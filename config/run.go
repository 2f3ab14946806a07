package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/abstree/forest"
	"github.com/katalvlaran/abstree/region"
)

// PerturbationSpec mirrors region.Perturbation in a YAML-friendly shape.
type PerturbationSpec struct {
	Kind   string  `yaml:"kind"`
	Radius float64 `yaml:"radius"`
	Lo     float64 `yaml:"lo"`
	Hi     float64 `yaml:"hi"`
}

// Run is the complete configuration of one analysis run (SPEC_FULL.md
// §4.13): where the classifier and dataset live, how to perturb each
// sample, the tier-group assignment, the per-sample timeout, and the
// voting scheme for forest classifiers.
type Run struct {
	ClassifierPath string           `yaml:"classifier_path"`
	DatasetPath    string           `yaml:"dataset_path"`
	TierPath       string           `yaml:"tier_path"`
	Perturbation   PerturbationSpec `yaml:"perturbation"`
	TimeoutSeconds int              `yaml:"timeout_seconds"`
	VotingScheme   string           `yaml:"voting_scheme"`
}

// Load reads and validates a Run configuration from a YAML file at path.
func Load(path string) (*Run, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var r Run
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Validate checks structural preconditions spec.md §7 classifies as
// INVALID_INPUT.
func (r *Run) Validate() error {
	if r.ClassifierPath == "" {
		return ErrMissingClassifierPath
	}
	if r.DatasetPath == "" {
		return ErrMissingDatasetPath
	}
	if r.TimeoutSeconds < 1 {
		return ErrInvalidTimeout
	}
	if _, err := r.ResolveVotingScheme(); err != nil {
		return err
	}
	if _, err := r.ResolvePerturbationKind(); err != nil {
		return err
	}

	return nil
}

// ResolveVotingScheme resolves the configured scheme name to a
// forest.VotingScheme.
func (r *Run) ResolveVotingScheme() (forest.VotingScheme, error) {
	switch r.VotingScheme {
	case "max":
		return forest.Max, nil
	case "average":
		return forest.Average, nil
	case "softargmax":
		return forest.SoftArgmax, nil
	default:
		return 0, ErrInvalidVotingScheme
	}
}

// ResolvePerturbationKind resolves the configured kind name to a
// region.Kind.
func (r *Run) ResolvePerturbationKind() (region.Kind, error) {
	switch r.Perturbation.Kind {
	case "linf":
		return region.LInf, nil
	case "linf_clip":
		return region.LInfClip, nil
	case "from_stream":
		return region.FromStream, nil
	default:
		return 0, ErrInvalidPerturbationKind
	}
}
