package enumerate

import "errors"

// ErrCapacityExceeded is returned when n exceeds bitset's capacity: the
// clique and separator sets a graph elimination produces are addressed as
// bitset.BitSet values, so n is bounded the same way everywhere else in
// this module.
var ErrCapacityExceeded = errors.New("enumerate: n exceeds bitset capacity")
