package fsm

import (
	"bytes"
	"sort"

	"github.com/cznic/strutil"
)

// labelOrder sorts a set's members by their printed form so that String()
// output is stable across runs despite Go's randomised map iteration, the
// same ordering sortedDisplay relies on for canonicalisation.
func labelOrder[T comparable](set map[T]struct{}) []T {
	out := make([]T, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return formatLabel(out[i]) < formatLabel(out[j])
	})
	return out
}

// String implements fmt.Stringer for debugging: a header line followed by
// one indented block per state, built with strutil.IndentFormatter.
func (n *NFA[S, A]) String() string {
	var b bytes.Buffer
	f := strutil.IndentFormatter(&b, "\t")
	f.Format("NFA states=%d alphabet=%d start=%s\n%i", len(n.states), len(n.alphabet), formatLabel(n.start))
	for _, s := range labelOrder(n.states) {
		mark := ""
		if _, ok := n.accepting[s]; ok {
			mark = "*"
		}
		f.Format("%s%s\n", formatLabel(s), mark)
		bySym := n.delta[s]
		syms := make([]Symbol[A], 0, len(bySym))
		for sym := range bySym {
			syms = append(syms, sym)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i].String() < syms[j].String() })
		for _, sym := range syms {
			f.Format("  %s -> %v\n", sym, labelOrder(bySym[sym]))
		}
	}
	return b.String()
}

// String implements fmt.Stringer for debugging, mirroring NFA.String but
// using d.describe for labels (SetStates print their backing members).
func (d *DFA[S, A]) String() string {
	var b bytes.Buffer
	f := strutil.IndentFormatter(&b, "\t")
	f.Format("DFA states=%d alphabet=%d start=%s\n%i", len(d.states), len(d.alphabet), d.describe(d.start))
	for _, s := range labelOrder(d.states) {
		mark := ""
		if _, ok := d.accepting[s]; ok {
			mark = "*"
		}
		f.Format("%s%s\n", d.describe(s), mark)
		row := d.delta[s]
		as := make([]A, 0, len(row))
		for a := range row {
			as = append(as, a)
		}
		sort.Slice(as, func(i, j int) bool { return formatLabel(as[i]) < formatLabel(as[j]) })
		for _, a := range as {
			f.Format("  %s -> %s\n", formatLabel(a), d.describe(row[a]))
		}
	}
	return b.String()
}
