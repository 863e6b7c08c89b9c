package fsm

// NFA is a nondeterministic finite automaton with epsilon transitions [2][4],
// over state labels S and alphabet A. Both type parameters must be
// comparable: Go's built-in comparability gives equality, native map
// hashing, and value-copy cloning for free, and values print via
// formatLabel without requiring a separate Stringer bound.
type NFA[S comparable, A comparable] struct {
	states    map[S]struct{}
	alphabet  map[A]struct{}
	start     S
	accepting map[S]struct{}
	delta     map[S]map[Symbol[A]]map[S]struct{}

	maxOutDegree int
}

// NewNFA builds a validated ε-NFA from a full formal tuple. It fails with
// InvalidAutomaton when accepting ⊄ states, start ∉ states, or any δ
// key/value references a label outside states, or any non-ε δ key lies
// outside alphabet.
func NewNFA[S comparable, A comparable](
	states map[S]struct{},
	alphabet map[A]struct{},
	start S,
	accepting map[S]struct{},
	delta map[S]map[Symbol[A]]map[S]struct{},
) (*NFA[S, A], error) {
	n := &NFA[S, A]{
		states:    cloneSet(states),
		alphabet:  cloneSet(alphabet),
		start:     start,
		accepting: cloneSet(accepting),
		delta:     cloneDelta(delta),
	}
	if err := n.validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// NewNFAFromDelta builds a validated ε-NFA, inferring states as the union of
// start, every accepting label, and every label mentioned on either side of
// δ; alphabet is inferred as the set of concrete symbols appearing as δ
// keys. The inferred tuple is then run through the same validation NewNFA
// uses.
func NewNFAFromDelta[S comparable, A comparable](
	start S,
	accepting map[S]struct{},
	delta map[S]map[Symbol[A]]map[S]struct{},
) (*NFA[S, A], error) {
	states := newSet(start)
	unionInto(states, accepting)
	alphabet := make(map[A]struct{})
	for from, bySym := range delta {
		states[from] = struct{}{}
		for sym, tos := range bySym {
			if a, ok := sym.Value(); ok {
				alphabet[a] = struct{}{}
			}
			unionInto(states, tos)
		}
	}
	return NewNFA(states, alphabet, start, accepting, delta)
}

func cloneDelta[S comparable, A comparable](delta map[S]map[Symbol[A]]map[S]struct{}) map[S]map[Symbol[A]]map[S]struct{} {
	out := make(map[S]map[Symbol[A]]map[S]struct{}, len(delta))
	for from, bySym := range delta {
		inner := make(map[Symbol[A]]map[S]struct{}, len(bySym))
		for sym, tos := range bySym {
			inner[sym] = cloneSet(tos)
		}
		out[from] = inner
	}
	return out
}

func (n *NFA[S, A]) validate() error {
	if !isSubset(n.accepting, n.states) {
		return invalid("accepting states must be a subset of states", sortedDisplay(setMinus(n.accepting, n.states))...)
	}
	if _, ok := n.states[n.start]; !ok {
		return invalid("start state must be a member of states", formatLabel(n.start))
	}
	for from, bySym := range n.delta {
		if _, ok := n.states[from]; !ok {
			return invalid("transition source must be a member of states", formatLabel(from))
		}
		degree := 0
		for sym, tos := range bySym {
			degree += len(tos)
			if a, ok := sym.Value(); ok {
				if _, ok := n.alphabet[a]; !ok {
					return invalid("non-ε transition symbol must be a member of alphabet", formatLabel(a))
				}
			}
			for to := range tos {
				if _, ok := n.states[to]; !ok {
					return invalid("transition target must be a member of states", formatLabel(to))
				}
			}
		}
		n.maxOutDegree = maxDegree(n.maxOutDegree, degree)
	}
	return nil
}

func setMinus[T comparable](a, b map[T]struct{}) map[T]struct{} {
	out := make(map[T]struct{})
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

// States returns a copy of the automaton's state set.
func (n *NFA[S, A]) States() map[S]struct{} { return cloneSet(n.states) }

// Alphabet returns a copy of the automaton's alphabet.
func (n *NFA[S, A]) Alphabet() map[A]struct{} { return cloneSet(n.alphabet) }

// Start returns the start state.
func (n *NFA[S, A]) Start() S { return n.start }

// Accepting returns a copy of the automaton's accepting-state set.
func (n *NFA[S, A]) Accepting() map[S]struct{} { return cloneSet(n.accepting) }

// Step returns δ(s, σ): the (possibly empty) set of successors of s under
// σ. A missing entry means "no successor", never a failure.
func (n *NFA[S, A]) Step(s S, sym Symbol[A]) map[S]struct{} {
	if bySym, ok := n.delta[s]; ok {
		if tos, ok := bySym[sym]; ok {
			return cloneSet(tos)
		}
	}
	return map[S]struct{}{}
}

// IsDeterministic reports whether every state has a trivial ε-closure (no ε
// out-edge reaches a new state) and exactly one successor per alphabet
// symbol. This is the stricter, structural reading spec'd for this engine:
// an NFA that merely happens to accept the same language as some DFA, but
// fails this structural test, is still reported nondeterministic.
func (n *NFA[S, A]) IsDeterministic() bool {
	for s := range n.states {
		if len(n.EpsilonClosure(s)) > 1 {
			return false
		}
		for a := range n.alphabet {
			if len(n.Step(s, Concrete(a))) != 1 {
				return false
			}
		}
	}
	return true
}
