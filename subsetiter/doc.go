// Package subsetiter enumerates subsets of a fixed universe in
// colexicographic order: the lowest-indexed free bit toggles fastest, the
// same order a binary counter produces when only the "free" bit positions
// are allowed to vary.
//
// RangeIter walks every S with A ⊆ S ⊆ B. RangeKIter additionally bounds
// |S| ≤ k. Both are used on the hot path of the dp package's f/g/h
// recurrence, so the exact successor rule and endpoint-exclusion semantics
// here are load-bearing: the memoization tables' short index (see
// pairtable) depends on bit positions, and the DP recurrence's exact
// candidate order must match between the forward pass, MAP backtracking,
// and the samplers.
package subsetiter
