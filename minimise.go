package fsm

import (
	"fmt"
	"sort"
	"strings"
)

// Minimise reduces d to its minimal equivalent via Moore-style partition
// refinement rather than Brzozowski double-reversal:
//
//  1. P = {F, Q∖F} (drop the empty block, if either side is empty).
//  2. Split each block B with |B| > 1 into sub-blocks: s1, s2 ∈ B stay
//     together iff, for every a in the alphabet, δ(s1,a) and δ(s2,a) land
//     in the same block of the *previous* partition.
//  3. Repeat until the partition stops growing (a fixed point — since
//     refinement never merges blocks, the block count stabilising is
//     itself the fixed-point test).
//  4. Build the quotient DFA: one SetState per class; transitions are
//     defined from any representative of a class, well-defined by
//     construction.
func (d *DFA[S, A]) Minimise() *DFA[SetState[S], A] {
	alphabetOrder := sortedAlphabet(d.alphabet)

	nonFinal := setMinus(d.states, d.accepting)
	final := cloneSet(d.accepting)
	var blocks []map[S]struct{}
	if len(nonFinal) > 0 {
		blocks = append(blocks, nonFinal)
	}
	if len(final) > 0 {
		blocks = append(blocks, final)
	}

	for {
		index := blockIndex(blocks)
		var next []map[S]struct{}
		for _, b := range blocks {
			if len(b) <= 1 {
				next = append(next, b)
				continue
			}
			groups := make(map[string]map[S]struct{})
			for s := range b {
				sig := signature(d, s, alphabetOrder, index)
				if groups[sig] == nil {
					groups[sig] = make(map[S]struct{})
				}
				groups[sig][s] = struct{}{}
			}
			for _, g := range groups {
				next = append(next, g)
			}
		}
		if len(next) == len(blocks) {
			blocks = next
			break
		}
		blocks = next
	}

	reg := newSetStateRegistry[S]()
	classOf := make(map[S]SetState[S])
	classes := newSet[SetState[S]]()
	for _, b := range blocks {
		id := reg.register(b)
		classes[id] = struct{}{}
		for s := range b {
			classOf[s] = id
		}
	}

	accepting := make(map[SetState[S]]struct{})
	delta := make(map[SetState[S]]map[A]SetState[S], len(classes))
	for _, b := range blocks {
		var rep S
		for s := range b {
			rep = s
			break
		}
		id := classOf[rep]
		if intersects(b, d.accepting) {
			accepting[id] = struct{}{}
		}
		row := make(map[A]SetState[S], len(d.alphabet))
		for a := range d.alphabet {
			to, _ := d.Step(rep, a)
			row[a] = classOf[to]
		}
		delta[id] = row
	}

	m := &DFA[SetState[S], A]{
		states:    classes,
		alphabet:  cloneSet(d.alphabet),
		start:     classOf[d.start],
		accepting: accepting,
		delta:     delta,
		describe:  describeFor(reg),
	}
	assertTotalDFA(m)
	return m
}

func sortedAlphabet[A comparable](alphabet map[A]struct{}) []A {
	order := make([]A, 0, len(alphabet))
	for a := range alphabet {
		order = append(order, a)
	}
	sort.Slice(order, func(i, j int) bool {
		return formatLabel(order[i]) < formatLabel(order[j])
	})
	return order
}

func blockIndex[S comparable](blocks []map[S]struct{}) map[S]int {
	index := make(map[S]int)
	for i, b := range blocks {
		for s := range b {
			index[s] = i
		}
	}
	return index
}

func signature[S comparable, A comparable](d *DFA[S, A], s S, alphabetOrder []A, index map[S]int) string {
	parts := make([]string, 0, len(alphabetOrder))
	for _, a := range alphabetOrder {
		to, _ := d.Step(s, a)
		parts = append(parts, fmt.Sprintf("%d", index[to]))
	}
	return strings.Join(parts, ",")
}
