package dp

import "errors"

// ErrNoOptimum is returned by Backtrack when no candidate at a recurrence
// step reproduces the recorded optimal score within BacktrackTolerance,
// which indicates either a corrupted memo table or a caller-supplied score
// value that changed between the forward pass and backtracking.
var ErrNoOptimum = errors.New("dp: no candidate matches recorded optimum")
