package fsm

// Fixtures are test data, not part of the core engine.

// divisibleBy3 builds the classic "binary divisible by 3" DFA: states
// {0,1,2} track the remainder, alphabet {'0','1'}, start 0, accepting {0}.
func divisibleBy3(t testingT) *DFA[int, rune] {
	d, err := NewDFA(
		newSet(0, 1, 2),
		newSet[rune]('0', '1'),
		0,
		newSet(0),
		map[int]map[rune]int{
			0: {'0': 0, '1': 1},
			1: {'0': 2, '1': 0},
			2: {'0': 1, '1': 2},
		},
	)
	if err != nil {
		t.Fatalf("divisibleBy3: %v", err)
	}
	return d
}

// fiveLabelEpsilonNFA builds a 5-state ε-NFA: start 0; accepting
// {0,2,4}; 0 -'0'-> {1}; 1 -'1'-> {2}, 1 -ε-> {3}; 2 -'0'-> {2}, 2 -'1'->
// {1}; 3 -'0'-> {4}.
func fiveLabelEpsilonNFA(t testingT) *NFA[int, rune] {
	n, err := NewNFAFromDelta(
		0,
		newSet(0, 2, 4),
		map[int]map[Symbol[rune]]map[int]struct{}{
			0: {Concrete('0'): newSet(1)},
			1: {Concrete('1'): newSet(2), Epsilon[rune](): newSet(3)},
			2: {Concrete('0'): newSet(2), Concrete('1'): newSet(1)},
			3: {Concrete('0'): newSet(4)},
		},
	)
	if err != nil {
		t.Fatalf("fiveLabelEpsilonNFA: %v", err)
	}
	return n
}

// eightStateDeterministicNFA builds an 8-state NFA, alphabet {'0','1'},
// start 0, accepting {2}, that happens to already be structurally
// deterministic.
func eightStateDeterministicNFA(t testingT) *NFA[int, rune] {
	n, err := NewNFAFromDelta(
		0,
		newSet(2),
		map[int]map[Symbol[rune]]map[int]struct{}{
			0: {Concrete('0'): newSet(1), Concrete('1'): newSet(3)},
			1: {Concrete('0'): newSet(2), Concrete('1'): newSet(4)},
			2: {Concrete('0'): newSet(2), Concrete('1'): newSet(2)},
			3: {Concrete('0'): newSet(5), Concrete('1'): newSet(6)},
			4: {Concrete('0'): newSet(2), Concrete('1'): newSet(7)},
			5: {Concrete('0'): newSet(3), Concrete('1'): newSet(3)},
			6: {Concrete('0'): newSet(6), Concrete('1'): newSet(6)},
			7: {Concrete('0'): newSet(2), Concrete('1'): newSet(2)},
		},
	)
	if err != nil {
		t.Fatalf("eightStateDeterministicNFA: %v", err)
	}
	return n
}

// testingT is the minimal subset of *testing.T the fixtures need, so they
// can be built from both Test* and Example* functions.
type testingT interface {
	Fatalf(format string, args ...any)
}
