// Package enumerate brute-forces every labeled graph on n vertices,
// keeps the ones that are chordal, and scores each via simplicial-vertex
// elimination. It exists as a correctness oracle for the shared dynamic
// program: for small n its exhaustively-computed partition function and
// edge marginals must agree with dp.Engine's, and it backs
// the CLI's "enum" action for exactly that reason. Its cost is
// exponential in C(n,2), so it is only useful for small instances.
package enumerate
