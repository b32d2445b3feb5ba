package automaton

import (
	"github.com/npillmayer/pda"
)

// Builder is a builder type for automata. Clients declare states and alphabets,
// then add rules with From(…). Declarations may come in any order; the definition
// is checked as a whole when calling Definition().
//
// Builders are not safe for concurrent use.
type Builder struct {
	name      string
	states    *symbolTable
	inputs    *symbolTable
	stacksyms *symbolTable
	start     pda.State
	bottom    pda.Symbol
	hasStart  bool
	accepting []pda.State
	rules     []*TransitionRule
	pending   []*RuleBuilder // rules under construction
}

// NewBuilder creates a builder for an automaton, given a name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:      name,
		states:    newSymbolTable(stateKind),
		inputs:    newSymbolTable(inputKind),
		stacksyms: newSymbolTable(stackKind),
	}
}

// States declares states.
func (b *Builder) States(names ...string) *Builder {
	for _, name := range names {
		b.states.defineTag(name)
	}
	return b
}

// Input declares characters of the input alphabet.
func (b *Builder) Input(chars ...rune) *Builder {
	for _, ch := range chars {
		b.inputs.defineTag(string(ch))
	}
	return b
}

// Stack declares symbols of the stack alphabet.
func (b *Builder) Stack(names ...string) *Builder {
	for _, name := range names {
		b.stacksyms.defineTag(name)
	}
	return b
}

// Start sets the initial state and the initial stack symbol.
func (b *Builder) Start(state string, stackSymbol string) *Builder {
	b.start, b.bottom = pda.State(state), pda.Symbol(stackSymbol)
	b.hasStart = true
	return b
}

// Accepting declares states as accepting. They have to be declared as states as well.
func (b *Builder) Accepting(names ...string) *Builder {
	for _, name := range names {
		b.accepting = append(b.accepting, pda.State(name))
	}
	return b
}

// Rule adds a pre-assembled transition rule.
func (b *Builder) Rule(r TransitionRule) *Builder {
	b.rules = append(b.rules, copyRule(&r))
	return b
}

// From starts a new transition rule, leaving state `from`. The rule is added when
// calling Push(…) or Pop() on the returned RuleBuilder.
// A rule without a call to Reads(…) is an ε-rule.
func (b *Builder) From(state string) *RuleBuilder {
	rb := &RuleBuilder{b: b, rule: TransitionRule{From: pda.State(state), Input: pda.Epsilon}}
	b.pending = append(b.pending, rb)
	return rb
}

// Definition checks the automaton built so far and returns an immutable Definition.
// If the automaton is inconsistent, a *DefinitionError is returned, listing every
// problem found.
func (b *Builder) Definition() (*Definition, error) {
	err := &DefinitionError{Automaton: b.name}
	for _, rb := range b.pending {
		if !rb.done {
			err.add("rule %s is incomplete (missing Push or Pop)", &rb.rule)
		} else if !rb.hasTop {
			err.add("rule %s has no stack symbol to match", &rb.rule)
		} else if !rb.hasTo {
			err.add("rule %s has no destination state", &rb.rule)
		}
	}
	if b.states.size() == 0 {
		err.add("no states declared")
	}
	if !b.hasStart {
		err.add("no initial state")
	} else {
		if !b.states.reference(string(b.start)) {
			err.add("initial state %s is not a declared state", b.start)
		}
		if !b.stacksyms.reference(string(b.bottom)) {
			err.add("initial stack symbol %s is not part of the stack alphabet", b.bottom)
		}
	}
	for _, s := range b.accepting {
		if !b.states.reference(string(s)) {
			err.add("accepting state %s is not a declared state", s)
		}
	}
	for _, r := range b.rules {
		b.check(r, err)
	}
	if !err.empty() {
		tracer().Errorf("%v", err)
		return nil, err
	}
	b.states.each(func(t *tag) {
		if t.refs == 0 {
			tracer().Infof("automaton %s: state %s is never referenced", b.name, t.name)
		}
	})
	def := newDefinition(b.name, b)
	def.Dump()
	return def, nil
}

func (b *Builder) check(r *TransitionRule, err *DefinitionError) {
	if !b.states.reference(string(r.From)) {
		err.add("rule %s leaves undeclared state %s", r, r.From)
	}
	if !b.states.reference(string(r.To)) {
		err.add("rule %s enters undeclared state %s", r, r.To)
	}
	if !r.IsEpsilon() && !b.inputs.reference(string(r.Input)) {
		err.add("rule %s reads %q, which is not part of the input alphabet", r, r.Input)
	}
	if !b.stacksyms.reference(string(r.Top)) {
		err.add("rule %s matches undeclared stack symbol %s", r, r.Top)
	}
	for _, sym := range r.Push {
		if !b.stacksyms.reference(string(sym)) {
			err.add("rule %s pushes undeclared stack symbol %s", r, sym)
		}
	}
}

// --- Rule builder ----------------------------------------------------------

// RuleBuilder assembles a single transition rule. Obtain one with Builder.From(…).
//
//    b.From("q0").Reads('a').Top("Z").To("q0").Push("A", "Z")
//
type RuleBuilder struct {
	b      *Builder
	rule   TransitionRule
	hasTop bool
	hasTo  bool
	done   bool
}

// Reads sets the required input character. Use pda.Epsilon for ε-rules.
func (rb *RuleBuilder) Reads(ch rune) *RuleBuilder {
	rb.rule.Input = ch
	return rb
}

// Epsilon makes the rule an ε-rule, which fires without consuming input.
func (rb *RuleBuilder) Epsilon() *RuleBuilder {
	rb.rule.Input = pda.Epsilon
	return rb
}

// Top sets the symbol required on top of the stack.
func (rb *RuleBuilder) Top(sym string) *RuleBuilder {
	rb.rule.Top = pda.Symbol(sym)
	rb.hasTop = true
	return rb
}

// To sets the destination state.
func (rb *RuleBuilder) To(state string) *RuleBuilder {
	rb.rule.To = pda.State(state)
	rb.hasTo = true
	return rb
}

// Push completes the rule. The top of stack is replaced by syms, given top-first.
func (rb *RuleBuilder) Push(syms ...string) *Builder {
	if rb.done {
		return rb.b
	}
	rb.rule.Push = make([]pda.Symbol, len(syms))
	for i, sym := range syms {
		rb.rule.Push[i] = pda.Symbol(sym)
	}
	rb.done = true
	if rb.hasTop && rb.hasTo {
		rb.b.rules = append(rb.b.rules, &rb.rule)
	}
	return rb.b
}

// Pop completes the rule as a pop-only rule.
func (rb *RuleBuilder) Pop() *Builder {
	return rb.Push()
}
