package treebuilder

import (
	"github.com/katalvlaran/abstree/forest"
	"github.com/katalvlaran/abstree/tree"
)

// Option customizes a forest Builder, mirroring the functional-options
// shape used throughout this codebase's construction helpers.
type Option func(*forestConfig)

type forestConfig struct {
	scheme forest.VotingScheme
}

// WithScheme sets the forest's voting scheme. The default, if omitted, is
// forest.Max.
func WithScheme(s forest.VotingScheme) Option {
	return func(c *forestConfig) { c.scheme = s }
}

// Builder accumulates member trees and assembles a *forest.Forest in a
// single terminal Build call.
type Builder struct {
	cfg   forestConfig
	trees []*tree.Tree
}

// NewForestBuilder starts a forest Builder with the given options applied.
func NewForestBuilder(opts ...Option) *Builder {
	cfg := forestConfig{scheme: forest.Max}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder{cfg: cfg}
}

// AddTree appends a member tree and returns the Builder for chaining.
func (b *Builder) AddTree(t *tree.Tree) *Builder {
	b.trees = append(b.trees, t)

	return b
}

// Build validates and assembles the accumulated trees into a *forest.Forest.
func (b *Builder) Build() (*forest.Forest, error) {
	if len(b.trees) == 0 {
		return nil, ErrNoTreesAdded
	}

	return forest.New(b.trees, b.cfg.scheme)
}
