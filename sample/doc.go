// Package sample draws junction trees from the posterior implied by a
// dp.Engine running under the LogSumExp semiring: a tree is returned with
// probability proportional to the exponential of its score, exactly the
// distribution whose normalizing constant dp.Engine.F(empty, complete)
// computes.
//
// Both samplers walk the same F/G/H recursion the engine itself uses to
// compute that constant, at each step drawing a candidate proportional to
// its share of the parent cell's total mass. NaiveSampler recomputes that
// share with a fresh inverse-CDF scan on every call; AdaptiveSampler
// caches a growing batch of pre-drawn candidates per DP cell so cells
// visited repeatedly across many samples amortize the scan's cost.
package sample
