package fsm

import "strings"

// SetState is a composite state identifier formed from a set of underlying
// labels, produced by Determinise and Minimise. Its only field is a
// canonical string built from the sorted, printed form of its backing
// members: sort the member representations, then join. That canonical
// string is what makes
// SetState[S] itself comparable (a struct of one string field satisfies
// Go's comparable constraint regardless of S), and it makes equality and
// hashing order-independent by construction: two SetStates built from the
// same backing members, added in any order, always produce the same key
// and therefore compare and hash identically.
type SetState[S comparable] struct {
	key string
}

const setStateSep = "\x1f"

// newSetState builds the canonical SetState for a backing set of labels.
func newSetState[S comparable](members map[S]struct{}) SetState[S] {
	return SetState[S]{key: strings.Join(sortedDisplay(members), setStateSep)}
}

// String renders the SetState as "{m1, m2, ...}".
func (ss SetState[S]) String() string {
	if ss.key == "" {
		return "{}"
	}
	return "{" + strings.Join(strings.Split(ss.key, setStateSep), ", ") + "}"
}

// setStateRegistry recovers the backing members of a SetState, built
// alongside Determinise/Minimise. It is the side table the design keeps
// separate from SetState itself so that SetState can stay comparable: a
// struct carrying a map or slice field directly would no longer satisfy
// Go's comparable constraint and could not be used as a DFA label type.
type setStateRegistry[S comparable] struct {
	members map[SetState[S]][]S
}

func newSetStateRegistry[S comparable]() *setStateRegistry[S] {
	return &setStateRegistry[S]{members: make(map[SetState[S]][]S)}
}

func (r *setStateRegistry[S]) register(set map[S]struct{}) SetState[S] {
	ss := newSetState(set)
	if _, ok := r.members[ss]; !ok {
		r.members[ss] = labelOrder(set)
	}
	return ss
}

// Members returns the backing labels of ss, if r was the registry that
// produced it (nil/empty otherwise).
func (r *setStateRegistry[S]) Members(ss SetState[S]) []S {
	return r.members[ss]
}
