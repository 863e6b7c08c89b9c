/*

Package fsm provides a finite-automaton engine over a generic alphabet and
a generic state-label type.

It supports construction and execution of nondeterministic finite automata
with epsilon transitions (ε-NFA), conversion from ε-NFA to an equivalent
deterministic finite automaton (DFA) via subset construction, and reduction
of a DFA to its minimal equivalent via partition refinement.

Dead DFA State

Minimisation here never introduces an explicit dead/trap state: a DFA built
through NewDFA must already be total, so every reachable label already has
a transition for every alphabet symbol.

Links

Referenced from elsewhere:

  [1]: http://en.wikipedia.org/wiki/Finite-state_machine
  [2]: http://en.wikipedia.org/wiki/Nondeterministic_finite_automaton
  [3]: http://en.wikipedia.org/wiki/Powerset_construction
  [4]: http://en.wikipedia.org/wiki/Nondeterministic_finite_automaton_with_%CE%B5-moves
  [5]: http://en.wikipedia.org/wiki/DFA_minimization

*/
package fsm
