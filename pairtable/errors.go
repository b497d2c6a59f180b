package pairtable

import "errors"

// ErrNotAllocated indicates a Get or Set call against an X whose
// cardinality exceeds the table's w, and which therefore has no backing
// block.
var ErrNotAllocated = errors.New("pairtable: X exceeds table width w")

// ErrOverlap indicates a Get or Set call where X and Y are not disjoint.
var ErrOverlap = errors.New("pairtable: X and Y are not disjoint")
