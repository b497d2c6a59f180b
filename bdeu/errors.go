package bdeu

import "errors"

// ErrMalformed is returned by ReadData when the input has no non-blank
// row, a row's column count disagrees with the first row's, or a value
// fails to parse as an integer category code.
var ErrMalformed = errors.New("bdeu: malformed categorical data")

// ErrCapacityExceeded is returned when the data's variable count or the
// requested maximum subset size exceeds bitset's capacity.
var ErrCapacityExceeded = errors.New("bdeu: n or maxSize exceeds bitset capacity")
