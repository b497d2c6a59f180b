package enumerate

import "github.com/jwkangas/junctor/bitset"

// LocalScorer supplies the local score of a subset. It has the same
// shape as dp.LocalScorer and junctiontree.LocalScorer, so any concrete
// scorer already used to build a dp.Engine can be handed to this package
// unchanged.
type LocalScorer interface {
	LocalScore(bitset.BitSet) float64
}

// Graph is a plain adjacency-matrix graph over n labeled vertices, built
// and torn down edge by edge during enumeration.
type Graph struct {
	n   int
	adj [][]bool
}

// NewGraph returns an edgeless graph on n vertices.
func NewGraph(n int) *Graph {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	return &Graph{n: n, adj: adj}
}

// AddEdge inserts the edge {i,j}.
func (g *Graph) AddEdge(i, j int) {
	g.adj[i][j] = true
	g.adj[j][i] = true
}

// DelEdge removes the edge {i,j}.
func (g *Graph) DelEdge(i, j int) {
	g.adj[i][j] = false
	g.adj[j][i] = false
}

// HasEdge reports whether {i,j} is an edge.
func (g *Graph) HasEdge(i, j int) bool {
	return g.adj[i][j]
}

// neighbors returns u's neighbors restricted to subset.
func (g *Graph) neighbors(u int, subset []bool) bitset.BitSet {
	s := bitset.Empty(g.n)
	for i := 0; i < g.n; i++ {
		if subset[i] && g.adj[u][i] {
			s = s.Add(i)
		}
	}
	return s
}

// isClique reports whether every pair of vertices in set is adjacent.
func (g *Graph) isClique(set bitset.BitSet) bool {
	elems := set.Elements(g.n)
	for i := 0; i < len(elems)-1; i++ {
		for j := i + 1; j < len(elems); j++ {
			if !g.adj[elems[i]][elems[j]] {
				return false
			}
		}
	}
	return true
}

// isAdjacentToAll reports whether u is adjacent to every vertex in set.
func (g *Graph) isAdjacentToAll(u int, set bitset.BitSet) bool {
	for _, v := range set.Elements(g.n) {
		if !g.adj[u][v] {
			return false
		}
	}
	return true
}

// hasCommonNeighborIn reports whether some vertex in subset is adjacent
// to every vertex in set.
func (g *Graph) hasCommonNeighborIn(set bitset.BitSet, subset []bool) bool {
	for i := 0; i < g.n; i++ {
		if subset[i] && g.isAdjacentToAll(i, set) {
			return true
		}
	}
	return false
}

// hasCommonNeighbor reports whether any vertex, restricted or not, is
// adjacent to every vertex in set.
func (g *Graph) hasCommonNeighbor(set bitset.BitSet) bool {
	for i := 0; i < g.n; i++ {
		if g.isAdjacentToAll(i, set) {
			return true
		}
	}
	return false
}

// isSimplicial reports whether u's neighborhood within subset is a clique.
func (g *Graph) isSimplicial(u int, subset []bool) bool {
	return g.isClique(g.neighbors(u, subset))
}

// findSimplicial returns a simplicial vertex still present in subset, or
// -1 if subset has none.
func (g *Graph) findSimplicial(subset []bool) int {
	for i := 0; i < g.n; i++ {
		if subset[i] && g.isSimplicial(i, subset) {
			return i
		}
	}
	return -1
}

// Score eliminates the graph one simplicial vertex at a time, accumulating
// the score of every clique it exposes minus every separator it exposes.
// chordal is false, and score and nCliques are meaningless, if elimination
// gets stuck without a simplicial vertex to remove.
func (g *Graph) Score(scores LocalScorer) (score float64, nCliques int, chordal bool) {
	subset := make([]bool, g.n)
	for i := range subset {
		subset[i] = true
	}

	for i := 0; i < g.n; i++ {
		s := g.findSimplicial(subset)
		if s == -1 {
			return 0, 0, false
		}
		subset[s] = false

		potential := g.neighbors(s, subset)
		if g.hasCommonNeighborIn(potential, subset) {
			score -= scores.LocalScore(potential)
		}

		potential = potential.Add(s)
		if !g.hasCommonNeighbor(potential) {
			score += scores.LocalScore(potential)
			nCliques++
		}
	}
	return score, nCliques, true
}
