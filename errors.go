package fsm

import (
	"fmt"
	"strings"
)

// InvalidAutomaton reports a validation failure from a validated builder:
// accepting ⊄ states, start ∉ states, a δ key/value outside states, a non-ε
// δ key outside alphabet, or (DFA only) a δ that is not total. Construction
// is the only fail point in the engine; execution never returns an error.
type InvalidAutomaton struct {
	Reason    string
	Offenders []string
}

func (e *InvalidAutomaton) Error() string {
	if len(e.Offenders) == 0 {
		return fmt.Sprintf("invalid automaton: %s", e.Reason)
	}
	return fmt.Sprintf("invalid automaton: %s: %s", e.Reason, strings.Join(e.Offenders, ", "))
}

func invalid(reason string, offenders ...string) *InvalidAutomaton {
	return &InvalidAutomaton{Reason: reason, Offenders: offenders}
}
