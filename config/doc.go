// Package config loads a single analysis run's settings from a YAML file
// via gopkg.in/yaml.v3 — already present in this module's dependency graph
// as an indirect pull-in, promoted here to a direct, load-bearing
// dependency for the run-configuration surface (classifier/dataset paths,
// perturbation spec, tier path, timeout, voting scheme) spec.md §6 treats
// as an out-of-scope collaborator's responsibility.
package config
