package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/pda/automaton"
	"github.com/npillmayer/pda/automaton/explore"
	"github.com/npillmayer/pda/pdaio"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// makeFork builds an automaton which accepts "a" in two different ways.
func makeFork(t *testing.T) *automaton.Definition {
	b := automaton.NewBuilder("fork")
	b.States("q0", "q1", "q2").Input('a').Stack("Z")
	b.Start("q0", "Z").Accepting("q1", "q2")
	b.From("q0").Reads('a').Top("Z").To("q1").Push("Z")
	b.From("q0").Reads('a').Top("Z").To("q2").Push("Z")
	def, err := b.Definition()
	if err != nil {
		t.Fatal(err)
	}
	return def
}

func TestTrailTreeSharesPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.cli")
	defer teardown()
	//
	result := explore.RunAll(makeFork(t), "a")
	if len(result.Trails) != 2 {
		t.Fatalf("expected 2 accepting trails, have %d", len(result.Trails))
	}
	ll := trailTree(result.Trails)
	if len(ll) != 3 {
		t.Fatalf("expected 3 tree items, have %d: %v", len(ll), ll)
	}
	if ll[0].Level != 0 || ll[1].Level != 1 || ll[2].Level != 1 {
		t.Errorf("expected levels 0, 1, 1, have %d, %d, %d", ll[0].Level, ll[1].Level, ll[2].Level)
	}
	if ll[0].Text != "(q0, a, Z)" {
		t.Errorf("expected root to be the initial configuration, is %q", ll[0].Text)
	}
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.cli")
	defer teardown()
	//
	s := &Session{
		engine: explore.NewEngine(makeFork(t)),
		format: pdaio.NewFormat(),
	}
	if s.Eval(":all") || !s.all {
		t.Errorf("expected :all to switch to reporting all trails")
	}
	if s.Eval(":rules") || s.Eval(":nonsense") || s.Eval("a") || s.Eval("ε") {
		t.Errorf("expected only :quit to end a session")
	}
	if !s.Eval(":quit") {
		t.Errorf("expected :quit to end a session")
	}
}

func TestIncompleteWarning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.cli")
	defer teardown()
	//
	if w := incompleteWarning(explore.Stats{Steps: 10, Pruned: 2}); w != "" {
		t.Errorf("expected no warning for cycle pruning, have %q", w)
	}
	if w := incompleteWarning(explore.Stats{Exhausted: true}); !strings.Contains(w, "budget") {
		t.Errorf("expected warning about the step budget, have %q", w)
	}
	if w := incompleteWarning(explore.Stats{Pruned: 3, EpsPruned: 3}); !strings.Contains(w, "ε-move bound") {
		t.Errorf("expected warning about the ε-move bound, have %q", w)
	}
}
