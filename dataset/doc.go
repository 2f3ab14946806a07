// Package dataset provides the row-major feature matrix plus parallel
// label array the driver iterates a classifier over, adapted from the
// flat-slice Dense matrix layout used elsewhere in this codebase for
// cache-friendly row storage (SPEC_FULL.md §4.9). Row returns a copy of a
// sample, so each call allocates one slice.
package dataset
