package fsm

// DFA is a deterministic finite automaton: same shape as NFA except δ is
// total and single-valued, with no ε keys.
type DFA[S comparable, A comparable] struct {
	states    map[S]struct{}
	alphabet  map[A]struct{}
	start     S
	accepting map[S]struct{}
	delta     map[S]map[A]S

	// describe renders a label for Nodes/Edges and String when the label
	// type itself (e.g. SetState[S]) needs more than formatLabel(s) to
	// look right. Determinise/Minimise set this to a closure over their
	// member registry; NewDFA defaults it to formatLabel.
	describe func(S) string
}

// NewDFA builds a validated DFA. Beyond the NFA checks (start ∈ states,
// accepting ⊆ states, every δ source and target ∈ states), it additionally requires δ
// to be total: every state in states must have a row in δ, and every row
// must have an entry for every alphabet symbol.
func NewDFA[S comparable, A comparable](
	states map[S]struct{},
	alphabet map[A]struct{},
	start S,
	accepting map[S]struct{},
	delta map[S]map[A]S,
) (*DFA[S, A], error) {
	d := &DFA[S, A]{
		states:    cloneSet(states),
		alphabet:  cloneSet(alphabet),
		start:     start,
		accepting: cloneSet(accepting),
		delta:     cloneTotalDelta(delta),
		describe:  formatLabel[S],
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func cloneTotalDelta[S comparable, A comparable](delta map[S]map[A]S) map[S]map[A]S {
	out := make(map[S]map[A]S, len(delta))
	for from, row := range delta {
		inner := make(map[A]S, len(row))
		for a, to := range row {
			inner[a] = to
		}
		out[from] = inner
	}
	return out
}

func (d *DFA[S, A]) validate() error {
	if !isSubset(d.accepting, d.states) {
		return invalid("accepting states must be a subset of states", sortedDisplay(setMinus(d.accepting, d.states))...)
	}
	if _, ok := d.states[d.start]; !ok {
		return invalid("start state must be a member of states", formatLabel(d.start))
	}
	for s := range d.states {
		row, ok := d.delta[s]
		if !ok {
			return invalid("transition table must be total over states", formatLabel(s))
		}
		for a := range d.alphabet {
			to, ok := row[a]
			if !ok {
				return invalid("transition row must be total over the alphabet", formatLabel(s)+" on "+formatLabel(a))
			}
			if _, ok := d.states[to]; !ok {
				return invalid("transition target must be a member of states", formatLabel(to))
			}
		}
		for a := range row {
			if _, ok := d.alphabet[a]; !ok {
				return invalid("transition symbol must be a member of alphabet", formatLabel(a))
			}
		}
	}
	for from := range d.delta {
		if _, ok := d.states[from]; !ok {
			return invalid("transition source must be a member of states", formatLabel(from))
		}
	}
	return nil
}

// States returns a copy of the automaton's state set.
func (d *DFA[S, A]) States() map[S]struct{} { return cloneSet(d.states) }

// Alphabet returns a copy of the automaton's alphabet.
func (d *DFA[S, A]) Alphabet() map[A]struct{} { return cloneSet(d.alphabet) }

// Start returns the start state.
func (d *DFA[S, A]) Start() S { return d.start }

// Accepting returns a copy of the automaton's accepting-state set.
func (d *DFA[S, A]) Accepting() map[S]struct{} { return cloneSet(d.accepting) }

// Step returns δ(s, a) and true, or the zero value and false if s or a is
// unknown to this DFA.
func (d *DFA[S, A]) Step(s S, a A) (S, bool) {
	row, ok := d.delta[s]
	if !ok {
		var zero S
		return zero, false
	}
	to, ok := row[a]
	return to, ok
}

// IsDeterministic always reports true: a validated DFA's δ is total and
// single-valued by construction. Exposed for symmetry with NFA.IsDeterministic.
func (d *DFA[S, A]) IsDeterministic() bool { return true }

// Accept consumes word and reports whether it drives the automaton from
// start into an accepting state. Unlike NFA.Accept, a symbol outside the
// alphabet simply has no successor; since δ is total for alphabet symbols
// this only happens for genuinely unknown symbols, and acceptance is false
// from that point on but the walk still runs to completion.
func (d *DFA[S, A]) Accept(word []A) bool {
	cur := d.start
	alive := true
	for _, a := range word {
		if !alive {
			continue
		}
		next, ok := d.Step(cur, a)
		if !ok {
			alive = false
			continue
		}
		cur = next
	}
	if !alive {
		return false
	}
	_, ok := d.accepting[cur]
	return ok
}
