// Package bitset represents a subset of a fixed vertex set V = {0,…,N-1}
// as a single machine word, and provides the set algebra the rest of
// junctor builds on.
//
// N is bounded by MaxN (32): every BitSet fits in a uint32, so union,
// intersection, and membership tests are O(1) machine operations. This
// mirrors the integer_set<unsigned int> representation used throughout the
// original C++ implementation this module is ported from.
package bitset
