package automaton

import (
	"errors"
	"testing"

	"github.com/npillmayer/pda"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// makeAnBn builds an automaton for aⁱbⁱ, i ≥ 1, accepting by final state.
func makeAnBn(t *testing.T) *Definition {
	b := NewBuilder("anbn")
	b.States("q0", "q1").Input('a', 'b').Stack("Z", "A")
	b.Start("q0", "Z").Accepting("q1")
	b.From("q0").Reads('a').Top("Z").To("q0").Push("A", "Z")
	b.From("q0").Reads('a').Top("A").To("q0").Push("A", "A")
	b.From("q0").Reads('b').Top("A").To("q1").Pop()
	b.From("q1").Reads('b').Top("A").To("q1").Pop()
	def, err := b.Definition()
	if err != nil {
		t.Fatal(err)
	}
	return def
}

func TestBuilderAnBn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.automaton")
	defer teardown()
	//
	def := makeAnBn(t)
	if def.RuleCount() != 4 {
		t.Errorf("expected automaton to have 4 rules, has %d", def.RuleCount())
	}
	if def.InitialState() != "q0" || def.InitialStackSymbol() != "Z" {
		t.Errorf("expected start to be q0/Z, is %s/%s", def.InitialState(), def.InitialStackSymbol())
	}
	if !def.IsAccepting("q1") || def.IsAccepting("q0") {
		t.Errorf("expected q1 to be the only accepting state, is %v", def.AcceptingStates())
	}
	if string(def.InputAlphabet()) != "ab" {
		t.Errorf("expected input alphabet to be 'ab', is %q", string(def.InputAlphabet()))
	}
	if syms := def.StackAlphabet(); len(syms) != 2 || syms[0] != "A" {
		t.Errorf("expected stack alphabet [A Z], is %v", syms)
	}
}

func TestBuilderDropsDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.automaton")
	defer teardown()
	//
	b := NewBuilder("dup")
	b.States("q").Input('x').Stack("Z").Start("q", "Z").Accepting("q")
	b.From("q").Reads('x').Top("Z").To("q").Push("Z")
	b.From("q").Reads('x').Top("Z").To("q").Push("Z")
	b.Rule(TransitionRule{From: "q", To: "q", Input: 'x', Top: "Z", Push: []pda.Symbol{"Z"}})
	def, err := b.Definition()
	if err != nil {
		t.Fatal(err)
	}
	if def.RuleCount() != 1 {
		t.Errorf("expected duplicate rules to collapse into 1, have %d", def.RuleCount())
	}
}

func TestBuilderRulesAreOrdered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.automaton")
	defer teardown()
	//
	def := makeAnBn(t)
	rules := def.Rules()
	for i := 1; i < len(rules); i++ {
		if CompareRules(rules[i-1], rules[i]) >= 0 {
			t.Errorf("rules not in order: %s before %s", rules[i-1], rules[i])
		}
	}
}

func TestDefinitionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.automaton")
	defer teardown()
	//
	for i, c := range []struct {
		name  string
		build func(b *Builder)
		count int
	}{
		{"no start", func(b *Builder) { b.States("q").Stack("Z") }, 1},
		{"unknown start", func(b *Builder) { b.States("q").Stack("Z").Start("p", "Z") }, 1},
		{"unknown bottom", func(b *Builder) { b.States("q").Stack("Z").Start("q", "Y") }, 1},
		{"accepting outside", func(b *Builder) {
			b.States("q").Stack("Z").Start("q", "Z").Accepting("f")
		}, 1},
		{"rule states", func(b *Builder) {
			b.States("q").Input('a').Stack("Z").Start("q", "Z")
			b.From("p").Reads('a').Top("Z").To("r").Pop()
		}, 2},
		{"rule symbols", func(b *Builder) {
			b.States("q").Input('a').Stack("Z").Start("q", "Z")
			b.From("q").Reads('b').Top("Y").To("q").Push("X", "Z")
		}, 3},
		{"incomplete rule", func(b *Builder) {
			b.States("q").Stack("Z").Start("q", "Z")
			b.From("q").Top("Z").To("q")
		}, 1},
		{"missing top", func(b *Builder) {
			b.States("q").Stack("Z").Start("q", "Z")
			b.From("q").To("q").Pop()
		}, 1},
	} {
		b := NewBuilder(c.name)
		c.build(b)
		def, err := b.Definition()
		if err == nil || def != nil {
			t.Errorf("test %d: expected definition error for %q", i, c.name)
			continue
		}
		var deferr *DefinitionError
		if !errors.As(err, &deferr) {
			t.Errorf("test %d: expected *DefinitionError, got %T", i, err)
			continue
		}
		if len(deferr.Problems) != c.count {
			t.Errorf("test %d: expected %d problems, got %v", i, c.count, deferr.Problems)
		}
	}
}

func TestEpsilonRulesNeedNoInputAlphabet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.automaton")
	defer teardown()
	//
	b := NewBuilder("eps")
	b.States("q", "f").Stack("Z").Start("q", "Z").Accepting("f")
	b.From("q").Epsilon().Top("Z").To("f").Push("Z")
	def, err := b.Definition()
	if err != nil {
		t.Fatal(err)
	}
	if !def.Rules()[0].IsEpsilon() {
		t.Errorf("expected rule to be an ε-rule: %s", def.Rules()[0])
	}
}
