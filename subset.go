package fsm

import "fmt"

// Determinise converts an ε-NFA into an equivalent DFA via subset
// construction: each DFA label is a SetState built from a set of original
// labels.
//
//  1. q0 = εclose(start); seed the frontier with {q0}.
//  2. While the frontier is non-empty, pop Q. For each a in alphabet,
//     Q' = εclose(⋃ δ(s, a)) over s ∈ Q; record δ'(Q, a) = Q'; push Q' if
//     it has not been emitted yet.
//  3. DFA states are every emitted SetState; accepting are those whose
//     backing set intersects the NFA's accepting set; start is q0.
//
// A naive implementation of this loop can insert the state being
// processed, rather than the newly discovered successor, into the DFA's
// state set — silently dropping reachable states from a deep
// determinisation. This implementation inserts the newly discovered
// SetState before pushing it onto the frontier.
func (n *NFA[S, A]) Determinise() *DFA[SetState[S], A] {
	reg := newSetStateRegistry[S]()

	q0 := n.epsilonClosureOfSet(newSet(n.start))
	start := reg.register(q0)

	type frontierItem struct {
		id  SetState[S]
		set map[S]struct{}
	}
	queue := []frontierItem{{start, q0}}
	discovered := newSet(start)
	states := newSet(start)
	accepting := make(map[SetState[S]]struct{})
	if intersects(q0, n.accepting) {
		accepting[start] = struct{}{}
	}
	delta := make(map[SetState[S]]map[A]SetState[S])

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		row := make(map[A]SetState[S], len(n.alphabet))
		for a := range n.alphabet {
			successors := make(map[S]struct{})
			for s := range cur.set {
				unionInto(successors, n.Step(s, Concrete(a)))
			}
			closed := n.epsilonClosureOfSet(successors)
			next := reg.register(closed)
			row[a] = next
			states[next] = struct{}{}

			if _, seen := discovered[next]; !seen {
				discovered[next] = struct{}{}
				if intersects(closed, n.accepting) {
					accepting[next] = struct{}{}
				}
				queue = append(queue, frontierItem{next, closed})
			}
		}
		delta[cur.id] = row
	}

	d := &DFA[SetState[S], A]{
		states:    states,
		alphabet:  cloneSet(n.alphabet),
		start:     start,
		accepting: accepting,
		delta:     delta,
		describe:  describeFor(reg),
	}
	assertTotalDFA(d)
	return d
}

// describeFor builds the label-printing closure for a DFA whose labels are
// SetStates: it prints the registry's backing members (e.g. "[1 2]")
// rather than the less informative canonical key directly.
func describeFor[S comparable](reg *setStateRegistry[S]) func(SetState[S]) string {
	return func(ss SetState[S]) string {
		members := reg.Members(ss)
		if len(members) == 0 {
			return "{}"
		}
		return fmt.Sprintf("%v", members)
	}
}

// assertTotalDFA is a debug-time determinism check: subset construction
// must emit a DFA whose δ is total over states × alphabet. A failure here
// is a bug in Determinise/Minimise, not a reachable user error, so it
// panics rather than returning an error.
func assertTotalDFA[S comparable, A comparable](d *DFA[S, A]) {
	for s := range d.states {
		row, ok := d.delta[s]
		if !ok {
			panic(fmt.Sprintf("fsm: internal error: state %v missing from transition table", s))
		}
		for a := range d.alphabet {
			if _, ok := row[a]; !ok {
				panic(fmt.Sprintf("fsm: internal error: state %v missing transition for %v", s, a))
			}
		}
	}
}
