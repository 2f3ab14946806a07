package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abstree/config"
	"github.com/katalvlaran/abstree/forest"
	"github.com/katalvlaran/abstree/region"
)

const sampleYAML = `
classifier_path: /tmp/model.json
dataset_path: /tmp/data.csv
tier_path: /tmp/tier.yaml
timeout_seconds: 5
voting_scheme: average
perturbation:
  kind: linf_clip
  radius: 0.3
  lo: 0
  hi: 1
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadValid(t *testing.T) {
	path := writeTemp(t, sampleYAML)
	r, err := config.Load(path)
	require.NoError(t, err)

	scheme, err := r.ResolveVotingScheme()
	require.NoError(t, err)
	assert.Equal(t, forest.Average, scheme)

	kind, err := r.ResolvePerturbationKind()
	require.NoError(t, err)
	assert.Equal(t, region.LInfClip, kind)
}

func TestLoadMissingClassifierPath(t *testing.T) {
	path := writeTemp(t, "dataset_path: /tmp/data.csv\ntimeout_seconds: 1\nvoting_scheme: max\nperturbation:\n  kind: linf\n")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrMissingClassifierPath)
}

func TestLoadInvalidVotingScheme(t *testing.T) {
	path := writeTemp(t, "classifier_path: x\ndataset_path: y\ntimeout_seconds: 1\nvoting_scheme: bogus\nperturbation:\n  kind: linf\n")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidVotingScheme)
}

func TestLoadInvalidTimeout(t *testing.T) {
	path := writeTemp(t, "classifier_path: x\ndataset_path: y\ntimeout_seconds: 0\nvoting_scheme: max\nperturbation:\n  kind: linf\n")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidTimeout)
}
