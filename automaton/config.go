package automaton

import (
	"fmt"
	"unicode/utf8"

	"github.com/cnf/structhash"
	"github.com/npillmayer/pda"
)

// Configuration is a snapshot of a running automaton ("status"): the current state,
// the input not yet consumed, and the stack. Configurations are values; applying a
// rule creates a new configuration.
type Configuration struct {
	state pda.State
	input string    // remaining input
	stack pda.Stack // current stack
}

// NewConfiguration creates a configuration from its parts.
func NewConfiguration(state pda.State, remaining string, stack pda.Stack) Configuration {
	return Configuration{
		state: state,
		input: remaining,
		stack: stack,
	}
}

// State returns the current state of a configuration.
func (c Configuration) State() pda.State {
	return c.state
}

// Remaining returns the input not consumed yet.
func (c Configuration) Remaining() string {
	return c.input
}

// Stack returns the current stack.
func (c Configuration) Stack() pda.Stack {
	return c.stack
}

// NextInput returns the next input character, if any.
func (c Configuration) NextInput() (rune, bool) {
	if len(c.input) == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input)
	return r, true
}

// InputDone is true if all of the input has been consumed.
func (c Configuration) InputDone() bool {
	return len(c.input) == 0
}

// Equals compares two configurations by value.
func (c Configuration) Equals(other Configuration) bool {
	return c.state == other.state && c.input == other.input && c.stack.Equals(other.stack)
}

// fingerprinted is the hashable projection of a configuration.
type fingerprinted struct {
	State string
	Input string
	Stack []string
}

// Fingerprint returns a hash over state, remaining input and stack contents.
// Equal configurations have equal fingerprints.
func (c Configuration) Fingerprint() string {
	syms := c.stack.TopFirst()
	f := fingerprinted{
		State: string(c.state),
		Input: c.input,
		Stack: make([]string, len(syms)),
	}
	for i, sym := range syms {
		f.Stack[i] = string(sym)
	}
	h, err := structhash.Hash(f, 1)
	if err != nil { // cannot happen for this type; fall back to the printed form
		tracer().Errorf("cannot hash configuration %s: %v", c, err)
		return c.String()
	}
	return h
}

// String returns a configuration in the form "(q0, abb, A,Z)".
func (c Configuration) String() string {
	input := c.input
	if input == "" {
		input = "ε"
	}
	stack := c.stack.String()
	if stack == "" {
		stack = "ε"
	}
	return fmt.Sprintf("(%s, %s, %s)", c.state, input, stack)
}
