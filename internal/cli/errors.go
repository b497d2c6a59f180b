// Package cli implements the argument parsing, action dispatch, and
// per-tree output formatting shared by cmd/junctor. It is internal
// because its argv grammar (concatenated single-letter flags, positional
// file/width/action/args) is specific to this program and not meant as a
// reusable library surface.
package cli

import "errors"

// ErrUsage indicates argv did not match the expected grammar: missing
// positional arguments, an unrecognized flag letter, or more than 16
// flags concatenated after the leading "-".
var ErrUsage = errors.New("cli: usage error")

// ErrIO indicates a file named on the command line could not be opened
// or read.
var ErrIO = errors.New("cli: I/O error")

// ErrFormat indicates the score file's header did not match the expected
// DMST/subset_scores/colex_order structure.
var ErrFormat = errors.New("cli: input format error")

// ErrParse indicates a compact tree string, or a numeric argument such as
// a sample count or RNG seed, could not be parsed.
var ErrParse = errors.New("cli: could not parse argument")

// ErrCapacity indicates the instance's variable count exceeds bitset's
// capacity.
var ErrCapacity = errors.New("cli: instance exceeds bitset capacity")
