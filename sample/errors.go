package sample

import "errors"

// ErrExhausted indicates that a sampler's inverse-CDF scan reached the end
// of its candidate list without accumulating past its drawn target, which
// indicates a mismatch between the engine's cached totals and the
// candidates re-enumerated during sampling.
var ErrExhausted = errors.New("sample: candidate scan exhausted before reaching target")

// ErrWrongSemiring is returned by both samplers' constructors when given
// an Engine whose semiring is not LogSumExp: only a partition-function run
// has the per-cell totals sampling weights are drawn against.
var ErrWrongSemiring = errors.New("sample: samplers require a LogSumExp engine")
