package config

import "errors"

// Sentinel errors for config package operations.
var (
	// ErrMissingClassifierPath indicates Run.ClassifierPath was empty.
	ErrMissingClassifierPath = errors.New("config: classifier_path is required")

	// ErrMissingDatasetPath indicates Run.DatasetPath was empty.
	ErrMissingDatasetPath = errors.New("config: dataset_path is required")

	// ErrInvalidVotingScheme indicates Run.VotingScheme did not match one
	// of "max", "average", "softargmax".
	ErrInvalidVotingScheme = errors.New("config: voting_scheme must be one of max, average, softargmax")

	// ErrInvalidPerturbationKind indicates Run.Perturbation.Kind did not
	// match one of "linf", "linf_clip", "from_stream".
	ErrInvalidPerturbationKind = errors.New("config: perturbation.kind must be one of linf, linf_clip, from_stream")

	// ErrInvalidTimeout indicates Run.TimeoutSeconds < 1.
	ErrInvalidTimeout = errors.New("config: timeout_seconds must be >= 1")
)
