package fsm

import (
	"fmt"
	"io"
	"os"
)

// Node is a graph-rendering node descriptor: its index in the enumeration,
// a printable label, and whether it belongs to the accepting set.
type Node struct {
	Index     int
	Label     string
	Accepting bool
}

// Edge is a graph-rendering edge descriptor. ε edges carry the literal
// label "ε"; concrete edges carry the symbol's printable form.
type Edge struct {
	Source int
	Target int
	Label  string
}

// Render enumerates n's states and transitions as Nodes/Edges, consistent
// with δ: every transition appears as exactly one edge. This is the sole
// contract the rendering layer (an external collaborator, e.g. a DOT
// writer) depends on — the engine never imports a graph library itself.
func (n *NFA[S, A]) Render() ([]Node, []Edge) {
	index := make(map[S]int, len(n.states))
	nodes := make([]Node, 0, len(n.states))
	for s := range n.states {
		idx := len(nodes)
		index[s] = idx
		_, accepting := n.accepting[s]
		nodes = append(nodes, Node{Index: idx, Label: formatLabel(s), Accepting: accepting})
	}

	edges := make([]Edge, 0, n.maxOutDegree*len(nodes))
	for from, bySym := range n.delta {
		for sym, tos := range bySym {
			for to := range tos {
				edges = append(edges, Edge{Source: index[from], Target: index[to], Label: sym.String()})
			}
		}
	}
	return nodes, edges
}

// Render enumerates d's states and transitions as Nodes/Edges, the same
// contract NFA.Render exposes, using d's describe function for labels so
// that determinised/minimised DFAs (whose labels are SetStates) render
// their backing members rather than an opaque canonical key.
func (d *DFA[S, A]) Render() ([]Node, []Edge) {
	index := make(map[S]int, len(d.states))
	nodes := make([]Node, 0, len(d.states))
	for s := range d.states {
		idx := len(nodes)
		index[s] = idx
		_, accepting := d.accepting[s]
		nodes = append(nodes, Node{Index: idx, Label: d.describe(s), Accepting: accepting})
	}

	edges := make([]Edge, 0, len(nodes)*len(d.alphabet))
	for from, row := range d.delta {
		for a, to := range row {
			edges = append(edges, Edge{Source: index[from], Target: index[to], Label: formatLabel(a)})
		}
	}
	return nodes, edges
}

// WriteDOT is the external rendering collaborator: it consumes a
// Nodes/Edges enumeration and writes a Graphviz DOT file to path, using
// only os.Create plus fmt.Fprintf. The file is owned by the caller once
// this returns.
func WriteDOT(path string, nodes []Node, edges []Edge) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeDOT(f, nodes, edges)
}

func writeDOT(w io.Writer, nodes []Node, edges []Edge) error {
	if _, err := fmt.Fprintln(w, "digraph fsm {"); err != nil {
		return err
	}
	for _, n := range nodes {
		shape := "circle"
		if n.Accepting {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "\tn%d [label=%q shape=%s];\n", n.Index, n.Label, shape); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "\tn%d -> n%d [label=%q];\n", e.Source, e.Target, e.Label); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
