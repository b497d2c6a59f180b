package junctiontree

import "errors"

// ErrMalformed indicates that a compact serialization could not be parsed:
// an unmatched brace, a non-numeric clique field, or trailing garbage.
var ErrMalformed = errors.New("junctiontree: malformed serialization")
