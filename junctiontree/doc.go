// Package junctiontree represents a rooted clique tree over a fixed
// n-vertex universe: each Node carries a clique and the separator it shares
// with its parent, and the running-intersection property required of a
// junction tree is an invariant of how Nodes are constructed by the dp
// package's backtracking, not something this package checks.
//
// Beyond the tree shape itself, this package provides the handful of
// derived views the original tooling exposes: total score against a set of
// local scores, structural statistics (width, depth, node count), the
// induced chordal graph as an adjacency Matrix, the Thomas-Green count of
// distinct labeled junction trees representing that same chordal graph, and
// a compact text serialization.
package junctiontree
