// Package pairtable stores one value per ordered pair of disjoint subsets
// (X, Y) of an n-element universe, restricted to |X| <= w.
//
// A naive dense table would need a value for every (X, Y) pair regardless of
// disjointness, wasting, for each X, the 2^n - 2^(n-|X|) entries where Y
// overlaps X. Table instead
// gives each X its own contiguous block sized 2^(n-|X|), one slot per subset
// of the complement of X, and packs Y into that block by dropping its bits
// at X's positions. This is the storage layout the dp package's f, g and h
// memoization tables share; it is what makes W the parameter that bounds
// their memory footprint rather than n alone.
package pairtable
