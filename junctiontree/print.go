package junctiontree

import (
	"fmt"
	"io"
	"strings"
)

// column returns the print column at which a node's separator annotation
// is aligned, wide enough to fit the deepest, widest clique labels in the
// tree without a label overrunning into the separator column.
func column(depth, width int) int {
	return 3*depth + 3*width + 1
}

// Print writes an ASCII rendering of the tree to w: each clique on its own
// line, indented to show tree structure, with its separator to its parent
// printed alongside (cliques without a separator, i.e. the root, print
// without one).
func (n *Node) Print(w io.Writer, uni int) error {
	depth := n.Depth()
	width := n.Width(uni)
	bars := make([]bool, depth+1)
	return n.printLevel(w, depth, width, 0, bars, uni)
}

func (n *Node) printLevel(w io.Writer, depth, width, level int, bars []bool, uni int) error {
	var b strings.Builder
	for i := 0; i < level; i++ {
		if i == level-1 {
			b.WriteString("+--")
		} else if bars[i] {
			b.WriteString("|  ")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString(n.Clique.String())

	line := b.String()
	if !n.Separator.IsEmpty() {
		pad := column(depth, width) - len(line)
		if pad < 1 {
			pad = 1
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", line, strings.Repeat(" ", pad), n.Separator.String()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}

	for i, c := range n.Children {
		bars[level] = i < len(n.Children)-1
		if err := c.printLevel(w, depth, width, level+1, bars, uni); err != nil {
			return err
		}
	}
	return nil
}

// ListCliques writes every clique in the tree, one per line, alongside its
// score under scores.
func (n *Node) ListCliques(w io.Writer, scores LocalScorer) error {
	if _, err := fmt.Fprintf(w, "%16.6f  %s\n", scores.LocalScore(n.Clique), n.Clique.String()); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.ListCliques(w, scores); err != nil {
			return err
		}
	}
	return nil
}

// ListSeparators writes every non-root separator in the tree, one per
// line, alongside its score under scores.
func (n *Node) ListSeparators(w io.Writer, scores LocalScorer) error {
	for _, c := range n.Children {
		if _, err := fmt.Fprintf(w, "%16.6f  %s\n", scores.LocalScore(c.Separator), c.Separator.String()); err != nil {
			return err
		}
		if err := c.ListSeparators(w, scores); err != nil {
			return err
		}
	}
	return nil
}
