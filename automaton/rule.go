package automaton

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pda"
)

// TransitionRule is a single transition of an automaton. It matches a triple
// (state, input character, top of stack) and yields a destination state together
// with a sequence of symbols to push.
//
// Rules are values with structural equality. Several rules may share the same
// triple (From, Input, Top); this is where nondeterminism comes from.
type TransitionRule struct {
	From  pda.State    // required current state
	To    pda.State    // destination state
	Input rune         // required input character or pda.Epsilon
	Top   pda.Symbol   // required top of stack
	Push  []pda.Symbol // symbols replacing Top, top-first
}

// IsEpsilon is true for a rule which does not consume input.
func (r *TransitionRule) IsEpsilon() bool {
	return r.Input == pda.Epsilon
}

// Equals compares two rules field by field.
func (r *TransitionRule) Equals(other *TransitionRule) bool {
	if r == nil || other == nil {
		return r == other
	}
	return CompareRules(r, other) == 0
}

// CompareRules imposes a total order on rules: by source state, input character,
// top of stack, destination state and finally the push sequence. ε-rules sort before
// rules reading a character.
//
// The exploration engine branches in this order, which makes runs reproducible.
func CompareRules(r1, r2 *TransitionRule) int {
	if c := pda.CompareStates(r1.From, r2.From); c != 0 {
		return c
	}
	if r1.Input != r2.Input {
		if r1.Input < r2.Input {
			return -1
		}
		return 1
	}
	if c := pda.CompareSymbols(r1.Top, r2.Top); c != 0 {
		return c
	}
	if c := pda.CompareStates(r1.To, r2.To); c != 0 {
		return c
	}
	return pda.CompareSymbolSeq(r1.Push, r2.Push)
}

// ruleComparator adapts CompareRules for gods containers.
func ruleComparator(a, b interface{}) int {
	return CompareRules(a.(*TransitionRule), b.(*TransitionRule))
}

// AppliesTo checks if a rule may fire for a configuration c: the states have to
// match, the stack has to be non-empty with the rule's Top on top, and the rule
// either is an ε-rule or c's remaining input starts with the rule's input character.
func (r *TransitionRule) AppliesTo(c Configuration) bool {
	if r.From != c.state {
		return false
	}
	if tos, ok := c.stack.Top(); !ok || tos != r.Top {
		return false
	}
	if r.IsEpsilon() {
		return true
	}
	ch, ok := c.NextInput()
	return ok && ch == r.Input
}

// Apply fires a rule for configuration c, returning the successor configuration.
// If the rule is not applicable, c is returned unchanged together with false.
func (r *TransitionRule) Apply(c Configuration) (Configuration, bool) {
	if !r.AppliesTo(c) {
		return c, false
	}
	next := Configuration{
		state: r.To,
		input: c.input,
		stack: c.stack.Replace(r.Push),
	}
	if !r.IsEpsilon() { // consume as many bytes as the matched character occupies
		_, width := utf8.DecodeRuneInString(c.input)
		next.input = c.input[width:]
	}
	return next, true
}

// String returns a rule in the form "(q0, a, Z) ➞ (q1, [A,Z])".
func (r *TransitionRule) String() string {
	push := make([]string, len(r.Push))
	for i, sym := range r.Push {
		push[i] = string(sym)
	}
	return fmt.Sprintf("(%s, %s, %s) ➞ (%s, [%s])", r.From, InputString(r.Input), r.Top,
		r.To, strings.Join(push, ","))
}

// InputString is a helper for printing input characters, printing pda.Epsilon as "ε".
func InputString(ch rune) string {
	if ch == pda.Epsilon {
		return "ε"
	}
	return string(ch)
}
