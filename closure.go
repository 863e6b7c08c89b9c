package fsm

// EpsilonClosure returns the reflexive-transitive closure of s under ε
// moves: the set of every label reachable from s by zero or more ε
// transitions, including s itself. Computed by iterative stack expansion
// with a visited set; expansion order is immaterial, every ε-reachable
// label appears exactly once.
func (n *NFA[S, A]) EpsilonClosure(s S) map[S]struct{} {
	visited := newSet(s)
	stack := []S{s}
	eps := Epsilon[A]()
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range n.Step(cur, eps) {
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			stack = append(stack, next)
		}
	}
	return visited
}

// epsilonClosureOfSet is EpsilonClosure unioned across every member of a
// set, used by both Accept and subset construction.
func (n *NFA[S, A]) epsilonClosureOfSet(states map[S]struct{}) map[S]struct{} {
	out := make(map[S]struct{})
	for s := range states {
		unionInto(out, n.EpsilonClosure(s))
	}
	return out
}

// epsilonClosureThenStep computes, for a single label s and concrete symbol
// a: first εclose(s), then the non-ε successors of every member under a,
// then the ε-closure of each successor, unioned. This is the
// "ε-closure-then-step" primitive; it is unexported and Accept applies it
// to every member of the current state set.
func (n *NFA[S, A]) epsilonClosureThenStep(s S, a A) map[S]struct{} {
	out := make(map[S]struct{})
	for start := range n.EpsilonClosure(s) {
		for next := range n.Step(start, Concrete(a)) {
			unionInto(out, n.EpsilonClosure(next))
		}
	}
	return out
}

// Accept consumes the input sequence word and reports whether it drives the
// automaton from εclose(start) into a state in the accepting set. Unknown
// symbols simply empty the current set out; the walk still runs to
// completion rather than failing.
func (n *NFA[S, A]) Accept(word []A) bool {
	current := n.EpsilonClosure(n.start)
	for _, a := range word {
		next := make(map[S]struct{})
		for s := range current {
			unionInto(next, n.epsilonClosureThenStep(s, a))
		}
		current = next
	}
	return intersects(current, n.accepting)
}
