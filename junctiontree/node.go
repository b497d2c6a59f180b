package junctiontree

import "github.com/jwkangas/junctor/bitset"

// Node is one clique of a rooted junction tree. Separator is the
// intersection this clique shares with its parent (empty at the root).
type Node struct {
	Clique    bitset.BitSet
	Separator bitset.BitSet
	Children  []*Node
}

// New constructs a leaf Node for clique with the given separator to its
// (as yet unknown) parent. Use AddChild to attach it under another Node.
func New(clique, separator bitset.BitSet) *Node {
	return &Node{Clique: clique, Separator: separator}
}

// AddChild attaches child under n.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Width returns the size of the largest clique in the subtree rooted at n,
// counted against a universe of size uni.
func (n *Node) Width(uni int) int {
	w := n.Clique.Cardinality(uni)
	for _, c := range n.Children {
		if cw := c.Width(uni); cw > w {
			w = cw
		}
	}
	return w
}

// Depth returns the length of the longest root-to-leaf path below n.
func (n *Node) Depth() int {
	d := 0
	for _, c := range n.Children {
		if cd := c.Depth() + 1; cd > d {
			d = cd
		}
	}
	return d
}

// Nodes returns the total number of cliques in the subtree rooted at n.
func (n *Node) Nodes() int {
	total := 1
	for _, c := range n.Children {
		total += c.Nodes()
	}
	return total
}

// LocalScorer supplies the per-subset score a Node's total Score is built
// from. Any type with this method satisfies it, including dp's own scorer
// type; the two are not the same Go type, only the same shape.
type LocalScorer interface {
	LocalScore(bitset.BitSet) float64
}

// Score returns the tree's score under scores: the sum over every clique of
// (clique score - separator score). The root's separator is empty, whose
// score every LocalScorer implementation defines to be zero.
func (n *Node) Score(scores LocalScorer) float64 {
	total := scores.LocalScore(n.Clique) - scores.LocalScore(n.Separator)
	for _, c := range n.Children {
		total += c.Score(scores)
	}
	return total
}

// Leaves reports whether n has no children.
func (n *Node) Leaves() bool {
	return len(n.Children) == 0
}
