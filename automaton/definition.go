package automaton

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/pda"
)

// Definition is the static definition of a pushdown automaton: states, input and
// stack alphabets, the initial state and initial stack symbol, the accepting states
// and the transition rules.
//
// Definitions are created by a Builder and are immutable. Rules handed out by a
// definition are shared and must not be modified by clients.
type Definition struct {
	name      string
	states    map[pda.State]bool // state ➞ is accepting?
	inputs    map[rune]struct{}
	stacksyms map[pda.Symbol]struct{}
	start     pda.State
	bottom    pda.Symbol
	rules     []*TransitionRule            // all rules, ordered by CompareRules
	index     map[ruleKey][]*TransitionRule // rules by (state, TOS), ordered
	// sorted copies of the alphabets
	order struct {
		states    []pda.State
		inputs    []rune
		stacksyms []pda.Symbol
	}
}

// rules are found by state and top of stack, as every rule requires both
type ruleKey struct {
	state pda.State
	top   pda.Symbol
}

// Name returns the name given to the automaton by its builder.
func (def *Definition) Name() string {
	return def.name
}

// States returns all states, sorted by name.
func (def *Definition) States() []pda.State {
	return append([]pda.State(nil), def.order.states...)
}

// AcceptingStates returns the accepting states, sorted by name.
func (def *Definition) AcceptingStates() []pda.State {
	var r []pda.State
	for _, s := range def.order.states {
		if def.states[s] {
			r = append(r, s)
		}
	}
	return r
}

// InputAlphabet returns the input characters, sorted.
func (def *Definition) InputAlphabet() []rune {
	return append([]rune(nil), def.order.inputs...)
}

// StackAlphabet returns the stack symbols, sorted by name.
func (def *Definition) StackAlphabet() []pda.Symbol {
	return append([]pda.Symbol(nil), def.order.stacksyms...)
}

// InitialState returns the state an automaton starts in.
func (def *Definition) InitialState() pda.State {
	return def.start
}

// InitialStackSymbol returns the single symbol on the stack at start.
func (def *Definition) InitialStackSymbol() pda.Symbol {
	return def.bottom
}

// HasState checks if s is a state of the automaton.
func (def *Definition) HasState(s pda.State) bool {
	_, ok := def.states[s]
	return ok
}

// IsAccepting checks if s is an accepting state.
func (def *Definition) IsAccepting(s pda.State) bool {
	return def.states[s]
}

// HasStackSymbol checks if sym is part of the stack alphabet.
func (def *Definition) HasStackSymbol(sym pda.Symbol) bool {
	_, ok := def.stacksyms[sym]
	return ok
}

// Rules returns all transition rules, ordered by CompareRules.
func (def *Definition) Rules() []*TransitionRule {
	return append([]*TransitionRule(nil), def.rules...)
}

// RuleCount returns the number of distinct transition rules.
func (def *Definition) RuleCount() int {
	return len(def.rules)
}

// InitialConfiguration returns the configuration for a run over input: initial
// state, the complete input, and the initial stack symbol as the only stack content.
func (def *Definition) InitialConfiguration(input string) Configuration {
	return Configuration{
		state: def.start,
		input: input,
		stack: pda.NewStack(def.bottom),
	}
}

// Applicable returns the rules applicable to configuration c, ordered by CompareRules.
// The result is empty for a dead end, i.e. a configuration where no rule fires.
func (def *Definition) Applicable(c Configuration) []*TransitionRule {
	tos, ok := c.stack.Top()
	if !ok {
		return nil
	}
	candidates := def.index[ruleKey{state: c.state, top: tos}]
	var r []*TransitionRule
	for _, rule := range candidates {
		if rule.AppliesTo(c) {
			r = append(r, rule)
		}
	}
	return r
}

// Dump is a debugging helper, tracing the automaton's definition.
func (def *Definition) Dump() {
	tracer().Debugf("--- automaton %s ---------------------------", def.name)
	tracer().Debugf("states    = %v", def.States())
	tracer().Debugf("accepting = %v", def.AcceptingStates())
	tracer().Debugf("input     = %q", string(def.InputAlphabet()))
	tracer().Debugf("stack     = %v", def.StackAlphabet())
	tracer().Debugf("start     = %s / %s", def.start, def.bottom)
	for i, r := range def.rules {
		tracer().Debugf("%3d: %s", i, r)
	}
	tracer().Debugf("---------------------------------------------")
}

// newDefinition assembles a definition from validated parts. Duplicate rules are
// dropped; rules are sorted and indexed.
func newDefinition(name string, b *Builder) *Definition {
	def := &Definition{
		name:      name,
		states:    make(map[pda.State]bool, b.states.size()),
		inputs:    make(map[rune]struct{}, b.inputs.size()),
		stacksyms: make(map[pda.Symbol]struct{}, b.stacksyms.size()),
		start:     b.start,
		bottom:    b.bottom,
		index:     make(map[ruleKey][]*TransitionRule),
	}
	b.states.each(func(t *tag) { def.states[pda.State(t.name)] = false })
	for _, s := range b.accepting {
		def.states[s] = true
	}
	b.inputs.each(func(t *tag) {
		for _, ch := range t.name {
			def.inputs[ch] = struct{}{}
		}
	})
	b.stacksyms.each(func(t *tag) { def.stacksyms[pda.Symbol(t.name)] = struct{}{} })
	def.sortAlphabets()
	ruleset := treeset.NewWith(ruleComparator)
	for _, r := range b.rules {
		if ruleset.Contains(r) {
			tracer().Debugf("dropping duplicate rule %s", r)
			continue
		}
		ruleset.Add(copyRule(r))
	}
	def.rules = make([]*TransitionRule, 0, ruleset.Size())
	it := ruleset.Iterator()
	for it.Next() {
		r := it.Value().(*TransitionRule)
		def.rules = append(def.rules, r)
		key := ruleKey{state: r.From, top: r.Top}
		def.index[key] = append(def.index[key], r)
	}
	return def
}

// sortAlphabets collects states and alphabets into ordered sets and keeps
// them as slices.
func (def *Definition) sortAlphabets() {
	states := treeset.NewWith(stateComparator)
	for s := range def.states {
		states.Add(s)
	}
	for _, v := range states.Values() {
		def.order.states = append(def.order.states, v.(pda.State))
	}
	inputs := treeset.NewWith(utils.RuneComparator)
	for ch := range def.inputs {
		inputs.Add(ch)
	}
	for _, v := range inputs.Values() {
		def.order.inputs = append(def.order.inputs, v.(rune))
	}
	syms := treeset.NewWith(symbolComparator)
	for sym := range def.stacksyms {
		syms.Add(sym)
	}
	for _, v := range syms.Values() {
		def.order.stacksyms = append(def.order.stacksyms, v.(pda.Symbol))
	}
}

func stateComparator(a, b interface{}) int {
	return pda.CompareStates(a.(pda.State), b.(pda.State))
}

func symbolComparator(a, b interface{}) int {
	return pda.CompareSymbols(a.(pda.Symbol), b.(pda.Symbol))
}

func copyRule(r *TransitionRule) *TransitionRule {
	c := *r
	c.Push = append([]pda.Symbol(nil), r.Push...)
	return &c
}
