package cli

import (
	"fmt"
	"io"

	"github.com/jwkangas/junctor/junctiontree"
)

// OutputTree prints one junction tree according to opts.Raw, in the same
// order the flags appear, mirroring TreeNode::output()'s per-flag switch.
// uni is the size of the full vertex universe (needed for Width/Graph).
func OutputTree(w io.Writer, node *junctiontree.Node, scores junctiontree.LocalScorer, opts Options, uni int) error {
	header := func(title string) {
		if !opts.Headers {
			return
		}
		fmt.Fprintf(w, "====================================== %s\n", title)
	}

	junctionTrees := -1.0
	var graph *junctiontree.Matrix

	for _, f := range opts.Raw {
		switch f {
		case 's':
			header("Score")
			fmt.Fprintf(w, "%f\n", node.Score(scores))
		case 'c':
			header("Compact")
			fmt.Fprintln(w, node.Serialize())
		case 'j':
			header("Junction trees")
			if junctionTrees == -1 {
				junctionTrees = node.CountJunctionTrees()
			}
			fmt.Fprintf(w, "%f\n", junctionTrees)
		case 'r':
			header("Rooted junction trees")
			if junctionTrees == -1 {
				junctionTrees = node.CountJunctionTrees()
			}
			fmt.Fprintf(w, "%f\n", junctionTrees*float64(node.Nodes()))
		case 't':
			header("Tree")
			if err := node.Print(w, uni); err != nil {
				return err
			}
		case 'k':
			header("Cliques and separators")
			fmt.Fprintln(w, "Cliques:")
			if err := node.ListCliques(w, scores); err != nil {
				return err
			}
			fmt.Fprintln(w, "Separators:")
			if err := node.ListSeparators(w, scores); err != nil {
				return err
			}
		case 'm':
			header("Adjacency matrix")
			if graph == nil {
				graph = node.Graph(uni)
			}
			fmt.Fprint(w, graph.String())
		case 'd':
			header(".dot")
			if graph == nil {
				graph = node.Graph(uni)
			}
			if err := graph.WriteDot(w); err != nil {
				return err
			}
		}
	}
	return nil
}
