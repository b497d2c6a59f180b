package scorefile

import "errors"

// ErrMalformed is returned by Read when the input does not begin with the
// expected DMST header tokens, in the expected order.
var ErrMalformed = errors.New("scorefile: malformed DMST header")

// ErrCapacityExceeded is returned when the header names a variable count
// or maximum subset size larger than bitset can represent.
var ErrCapacityExceeded = errors.New("scorefile: n or m exceeds bitset capacity")

// ErrTruncated is returned by Read when fewer score values are present
// than the header promises.
var ErrTruncated = errors.New("scorefile: fewer scores than the header promises")
