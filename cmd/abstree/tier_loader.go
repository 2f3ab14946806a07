package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/abstree/tier"
)

type tierFile struct {
	Groups []int `yaml:"groups"`
}

// loadTier reads a YAML file of the shape `groups: [1,1,1,0]` into a
// tier.Vector. An empty path means "no tiers" (nil Vector).
func loadTier(path string, n int) (tier.Vector, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading tier %s: %w", path, err)
	}

	var tf tierFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parsing tier %s: %w", path, err)
	}

	return tier.New(tf.Groups, n)
}
