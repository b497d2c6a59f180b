package bitset

import "errors"

// ErrCapacityExceeded indicates that a requested vertex count exceeds
// MaxN, the number of bits a BitSet can address.
var ErrCapacityExceeded = errors.New("bitset: vertex count exceeds capacity")
