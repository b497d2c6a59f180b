// Package junctor finds and samples from the posterior over decomposable
// (chordal) graphical models on a small fixed vertex set, given additive
// local scores defined on every vertex subset up to a maximum clique width.
//
// A chordal graph is represented uniquely by its junction tree: a tree of
// maximal cliques whose edges carry the clique intersections (separators)
// under the running-intersection property. junctor computes:
//
//   - the single maximum-a-posteriori (MAP) junction tree,
//   - random junction trees drawn proportional to exp(score),
//   - the score of a junction tree given in a compact textual form,
//   - all decomposable graphs on a small vertex count, by brute force.
//
// Package layout:
//
//	bitset/       — fixed-width subset representation and set algebra
//	subsetiter/    — colex-ordered subset enumeration
//	pairtable/     — storage indexed by pairs of disjoint subsets
//	dp/            — the shared f/g/h recurrence (max-plus and log-sum-exp)
//	                 and MAP backtracking
//	sample/        — naive and adaptive samplers over the dp tables
//	alias/         — Walker's alias method
//	junctiontree/  — the clique-tree result type and its services
//	scorefile/     — reading and writing the DMST score file format
//	enumerate/     — brute-force chordal-graph enumeration (validation oracle)
//	bdeu/          — BDeu subset scores from categorical data
//	cmd/junctor/   — the command-line tool
//	cmd/dmscore/   — the auxiliary score-file generator
//
// The DP core (dp, pairtable, subsetiter, bitset, sample, alias) is the
// load-bearing part of this module; scorefile, enumerate, bdeu, and the two
// commands are collaborators whose contracts it consumes or produces.
package junctor
