// Package alias implements Walker's alias method: given n weights, it
// builds, in O(n) time, a table that draws an index in O(1) time with
// probability proportional to its weight.
//
// It backs sample.AdaptiveSampler's per-cell caches, where drawing from
// the same discrete distribution thousands of times over the course of a
// run makes the O(n) inverse-CDF scan sample.NaiveSampler uses too slow.
package alias
