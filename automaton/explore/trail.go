package explore

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pda/automaton"
)

// Step is an entry of a trace trail: a configuration, together with the rule
// which led to it. The rule of the first step of a trail is nil.
type Step struct {
	Rule          *automaton.TransitionRule
	Configuration automaton.Configuration
}

// TraceTrail is the history of configurations along one explored branch, from the
// initial configuration to the terminal configuration of the branch: an accepting
// configuration, or a dead end.
//
// Trails handed out by an engine are immutable.
type TraceTrail struct {
	steps     []Step
	accepting bool
}

// Len returns the number of configurations of a trail.
func (tt *TraceTrail) Len() int {
	if tt == nil {
		return 0
	}
	return len(tt.steps)
}

// At returns the i-th configuration of a trail, with the initial configuration at 0.
func (tt *TraceTrail) At(i int) automaton.Configuration {
	return tt.steps[i].Configuration
}

// Step returns the i-th step of a trail.
func (tt *TraceTrail) Step(i int) Step {
	return tt.steps[i]
}

// Last returns the terminal configuration of a trail.
func (tt *TraceTrail) Last() automaton.Configuration {
	return tt.steps[len(tt.steps)-1].Configuration
}

// Accepting is true if a trail ends in an accepting configuration.
func (tt *TraceTrail) Accepting() bool {
	return tt != nil && tt.accepting
}

// Configurations returns a copy of the configurations of a trail, in order.
func (tt *TraceTrail) Configurations() []automaton.Configuration {
	cc := make([]automaton.Configuration, tt.Len())
	for i := range cc {
		cc[i] = tt.steps[i].Configuration
	}
	return cc
}

// Rules returns the rules fired along a trail, in order. The result has one entry
// less than there are configurations.
func (tt *TraceTrail) Rules() []*automaton.TransitionRule {
	if tt.Len() < 2 {
		return nil
	}
	rr := make([]*automaton.TransitionRule, len(tt.steps)-1)
	for i := range rr {
		rr[i] = tt.steps[i+1].Rule
	}
	return rr
}

// Check verifies that every pair of consecutive configurations is connected by
// exactly one rule of def, and that this is the rule recorded for the step.
func (tt *TraceTrail) Check(def *automaton.Definition) error {
	if tt.Len() == 0 {
		return fmt.Errorf("trail is empty")
	}
	if !tt.At(0).Equals(def.InitialConfiguration(tt.At(0).Remaining())) {
		return fmt.Errorf("trail does not start with an initial configuration: %s", tt.At(0))
	}
	for i := 1; i < len(tt.steps); i++ {
		prev, c := tt.steps[i-1].Configuration, tt.steps[i].Configuration
		var connecting []*automaton.TransitionRule
		for _, r := range def.Applicable(prev) {
			if next, _ := r.Apply(prev); next.Equals(c) {
				connecting = append(connecting, r)
			}
		}
		if len(connecting) != 1 {
			return fmt.Errorf("step %d: %d rules lead from %s to %s", i, len(connecting), prev, c)
		}
		if !connecting[0].Equals(tt.steps[i].Rule) {
			return fmt.Errorf("step %d: recorded rule %s does not lead from %s to %s",
				i, tt.steps[i].Rule, prev, c)
		}
	}
	return nil
}

// String lists the configurations of a trail, separated by arrows.
func (tt *TraceTrail) String() string {
	if tt.Len() == 0 {
		return "<empty trail>"
	}
	var b strings.Builder
	for i, step := range tt.steps {
		if i > 0 {
			b.WriteString(" ⊢ ")
		}
		b.WriteString(step.Configuration.String())
	}
	return b.String()
}

// --- Trail nodes -----------------------------------------------------------

// trailNode is a node in the tree of explored configurations. Branches share
// their common prefix through parent links and each branch extends its own leaf,
// so sibling branches never see each other's configurations.
type trailNode struct {
	parent *trailNode
	conf   automaton.Configuration
	rule   *automaton.TransitionRule // rule leading from parent to here
	depth  int                       // number of configurations from the root, incl. this one
	epsrun int                       // consecutive ε-moves leading here
}

func rootNode(c automaton.Configuration) *trailNode {
	return &trailNode{conf: c, depth: 1}
}

func (n *trailNode) extend(r *automaton.TransitionRule, c automaton.Configuration) *trailNode {
	child := &trailNode{
		parent: n,
		conf:   c,
		rule:   r,
		depth:  n.depth + 1,
	}
	if r.IsEpsilon() {
		child.epsrun = n.epsrun + 1
	}
	return child
}

// onPath checks if configuration c occurs on the path from the root to n.
func (n *trailNode) onPath(c automaton.Configuration) bool {
	for ; n != nil; n = n.parent {
		if n.conf.Equals(c) {
			return true
		}
	}
	return false
}

// trail materializes the path from the root to n.
func (n *trailNode) trail(accepting bool) *TraceTrail {
	if n == nil {
		return nil
	}
	tt := &TraceTrail{
		steps:     make([]Step, n.depth),
		accepting: accepting,
	}
	for i := n.depth - 1; n != nil; n, i = n.parent, i-1 {
		tt.steps[i] = Step{Rule: n.rule, Configuration: n.conf}
	}
	return tt
}
