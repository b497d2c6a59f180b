package junctiontree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwkangas/junctor/bitset"
)

// Serialize renders the tree as a compact string: each clique is written
// as its bitmask integer, immediately followed by its children each
// wrapped in braces, e.g. "7{3{1}{2}}" for a root {0,1,2} with a single
// child {0,1} which itself has two leaf children {0} and {1}.
func (n *Node) Serialize() string {
	var b strings.Builder
	n.serializeInto(&b)
	return b.String()
}

func (n *Node) serializeInto(b *strings.Builder) {
	fmt.Fprintf(b, "%d", n.Clique.Bits())
	for _, c := range n.Children {
		b.WriteByte('{')
		c.serializeInto(b)
		b.WriteByte('}')
	}
}

// Deserialize parses a string produced by Serialize back into a Node tree.
// The root's separator is set to the empty set.
func Deserialize(s string) (*Node, error) {
	p := &parser{s: s}
	node, err := p.parseNode(bitset.BitSet(0))
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("%w: trailing input %q", ErrMalformed, p.s[p.pos:])
	}
	return node, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) parseNode(parent bitset.BitSet) (*Node, error) {
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return nil, fmt.Errorf("%w: expected clique digits at position %d", ErrMalformed, start)
	}

	bits, err := strconv.ParseUint(p.s[start:p.pos], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	clique := bitset.FromBits(uint32(bits))
	node := New(clique, clique.Intersect(parent))

	for p.pos < len(p.s) && p.s[p.pos] == '{' {
		p.pos++
		child, err := p.parseNode(clique)
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.s) || p.s[p.pos] != '}' {
			return nil, fmt.Errorf("%w: expected '}' at position %d", ErrMalformed, p.pos)
		}
		p.pos++
		node.AddChild(child)
	}

	return node, nil
}
