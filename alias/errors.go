package alias

import "errors"

// ErrEmptyWeights is returned by New when given no weights to build a
// table from.
var ErrEmptyWeights = errors.New("alias: weights slice is empty")

// ErrNonPositiveWeight is returned by New when a weight is negative, or
// when every weight is zero so no index could ever be drawn.
var ErrNonPositiveWeight = errors.New("alias: weights must be non-negative and sum to a positive total")
