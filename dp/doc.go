// Package dp implements the shared dynamic program that both MAP search
// and posterior sampling reduce to: a recurrence over rooted partition
// trees, evaluated in one of two semirings.
//
// Three mutually recursive functions carry the recurrence. F(S, R) folds
// over every nonempty candidate clique-complement D ⊆ R with
// |S|+|D| <= W (when the Engine's RestrictF applies and S is empty, only
// candidates containing R's smallest element), combining the local score
// of the new clique C = S | D with G(C, R\D). G(C, U) folds over every way to split a
// remaining vertex set U into a first partition-tree region R (forced to
// contain U's smallest element, to avoid counting the same split twice)
// and its complement, combining H(C, R) with G(C, U\R). H(C, R) folds over
// every strict subset S of C that could have been the separator leading
// into C, combining F(S, R) with the local score of S subtracted back out.
//
// Under the MaxPlus semiring this recurrence computes the best-scoring
// junction tree (MAP); under LogSumExp it computes the log partition
// function over all junction trees, the normalizing constant the sample
// package's samplers draw against. Both share one Engine and one set of
// memo tables so the two problems never drift apart in their definition of
// what counts as a partition tree.
package dp
