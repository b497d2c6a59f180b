package junctiontree

import "github.com/jwkangas/junctor/bitset"

// CountJunctionTrees counts the number of distinct labeled junction trees
// that represent the same chordal graph as n, following Thomas & Green
// (2009): for every distinct separator I appearing in the tree, the
// subtree "rooted" at I's highest occurrence splits into independent
// components at each of I's other occurrences, and the number of ways to
// arrange those components as a tree over n_nodes labeled positions is
// n_nodes^(n_components-2) times the product of each component's own node
// count. The total is the product of this quantity over every distinct
// separator.
func (n *Node) CountJunctionTrees() float64 {
	seen := map[bitset.BitSet]bool{}
	var order []bitset.BitSet
	n.findIntersections(seen, &order)

	total := 1.0
	for _, sep := range order {
		total *= n.findIntersectionRoot(sep)
	}
	return total
}

// CountRootedJunctionTrees counts the number of distinct (tree, root)
// pairs: CountJunctionTrees times the number of cliques, since any clique
// may serve as the root of an otherwise-identical unrooted tree.
func (n *Node) CountRootedJunctionTrees() float64 {
	return n.CountJunctionTrees() * float64(n.Nodes())
}

func (n *Node) findIntersections(seen map[bitset.BitSet]bool, order *[]bitset.BitSet) {
	for _, c := range n.Children {
		if !seen[c.Separator] {
			seen[c.Separator] = true
			*order = append(*order, c.Separator)
		}
		c.findIntersections(seen, order)
	}
}

// findIntersectionSubtree walks the subtree rooted at n, counting the
// nodes that contain i as a subset of their clique (nNodes), and, for
// every child edge whose separator equals i exactly, treating that child's
// subtree as a separate component whose size multiplies into product.
func (n *Node) findIntersectionSubtree(i bitset.BitSet, nNodes *int, nComponents *int, product *float64) int {
	if !i.SubsetOf(n.Clique) {
		return 0
	}
	*nNodes++

	nodes := 1
	for _, c := range n.Children {
		subtreeNodes := c.findIntersectionSubtree(i, nNodes, nComponents, product)
		if c.Separator.Equal(i) {
			*nComponents++
			*product *= float64(subtreeNodes)
		} else {
			nodes += subtreeNodes
		}
	}
	return nodes
}

// findIntersectionRoot locates the highest node in the tree whose clique
// contains i and evaluates the Thomas-Green term for i from there.
func (n *Node) findIntersectionRoot(i bitset.BitSet) float64 {
	if i.SubsetOf(n.Clique) {
		nNodes := 0
		nComponents := 1
		product := 1.0
		nodes := n.findIntersectionSubtree(i, &nNodes, &nComponents, &product)
		product *= float64(nodes)
		return ipow(nNodes, nComponents-2) * product
	}

	for _, c := range n.Children {
		if trees := c.findIntersectionRoot(i); trees > 0 {
			return trees
		}
	}
	return 0
}

// ipow returns base^exp for a possibly-negative integer exponent, as
// float64. Thomas-Green's n_components is always >= 1, so exp is always
// >= -1 here.
func ipow(base, exp int) float64 {
	if exp >= 0 {
		result := 1.0
		for i := 0; i < exp; i++ {
			result *= float64(base)
		}
		return result
	}
	return 1.0 / ipow(base, -exp)
}
