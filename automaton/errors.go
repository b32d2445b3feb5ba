package automaton

import (
	"fmt"
	"strings"
)

// DefinitionError is returned when constructing an automaton whose definition is
// inconsistent, e.g. a transition rule refers to an undeclared state. It lists all
// the problems found, not just the first one.
type DefinitionError struct {
	Automaton string   // name of the automaton
	Problems  []string // one entry per violated invariant
}

func (e *DefinitionError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("automaton %q: %s", e.Automaton, e.Problems[0])
	}
	return fmt.Sprintf("automaton %q has %d definition errors: %s", e.Automaton,
		len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *DefinitionError) add(format string, args ...interface{}) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

func (e *DefinitionError) empty() bool {
	return len(e.Problems) == 0
}
