// Command fsmdemo is an out-of-scope convenience driver: it constructs a
// couple of literal-map automata and renders them to Graphviz DOT, the
// same role main.go plays in Toasa-regexp. It is not part of the fsm
// library surface.
package main

import (
	"fmt"
	"os"

	"github.com/shuyangsun/intro-to-compilers"
)

func main() {
	divisibleBy3, err := fsm.NewDFA(
		map[int]struct{}{0: {}, 1: {}, 2: {}},
		map[rune]struct{}{'0': {}, '1': {}},
		0,
		map[int]struct{}{0: {}},
		map[int]map[rune]int{
			0: {'0': 0, '1': 1},
			1: {'0': 2, '1': 0},
			2: {'0': 1, '1': 2},
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build divisible-by-3 DFA:", err)
		os.Exit(1)
	}

	nodes, edges := divisibleBy3.Render()
	if err := fsm.WriteDOT("divisible_by_3.dot", nodes, edges); err != nil {
		fmt.Fprintln(os.Stderr, "render divisible-by-3 DFA:", err)
		os.Exit(1)
	}

	epsilonNFA, err := fsm.NewNFAFromDelta(
		0,
		map[int]struct{}{0: {}, 2: {}, 4: {}},
		map[int]map[fsm.Symbol[rune]]map[int]struct{}{
			0: {fsm.Concrete('0'): {1: {}}},
			1: {fsm.Concrete('1'): {2: {}}, fsm.Epsilon[rune](): {3: {}}},
			2: {fsm.Concrete('0'): {2: {}}, fsm.Concrete('1'): {1: {}}},
			3: {fsm.Concrete('0'): {4: {}}},
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build ε-NFA:", err)
		os.Exit(1)
	}

	nodes, edges = epsilonNFA.Render()
	if err := fsm.WriteDOT("epsilon_nfa.dot", nodes, edges); err != nil {
		fmt.Fprintln(os.Stderr, "render ε-NFA:", err)
		os.Exit(1)
	}

	dfa := epsilonNFA.Determinise()
	minimal := dfa.Minimise()
	fmt.Printf("ε-NFA: %d states\ndeterminised: %d states\nminimised: %d states\n",
		len(epsilonNFA.States()), len(dfa.States()), len(minimal.States()))
}
