package pdaio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/pda"
	"github.com/npillmayer/pda/automaton"
	"github.com/npillmayer/pda/automaton/explore"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func readAnBn(t *testing.T) *automaton.Definition {
	def, err := ReadDefinition(strings.NewReader(anbn), Name("anbn"))
	if err != nil {
		t.Fatal(err)
	}
	return def
}

func TestTransitionLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.io")
	defer teardown()
	//
	f := NewFormat()
	r := &automaton.TransitionRule{From: "q0", To: "q1", Input: 'a', Top: "Z", Push: []pda.Symbol{"A", "Z"}}
	if l := strings.Join(f.TransitionLine(r), " "); l != "q0 a Z q1 A,Z" {
		t.Errorf("expected 'q0 a Z q1 A,Z', is %q", l)
	}
	r = &automaton.TransitionRule{From: "q1", To: "q2", Input: pda.Epsilon, Top: "A"}
	if l := strings.Join(f.TransitionLine(r), " "); l != "q1 ε A q2 ε" {
		t.Errorf("expected 'q1 ε A q2 ε', is %q", l)
	}
	f = NewFormat(EpsilonToken("_"))
	if l := strings.Join(f.TransitionLine(r), " "); l != "q1 _ A q2 _" {
		t.Errorf("expected 'q1 _ A q2 _', is %q", l)
	}
}

func TestStatusLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.io")
	defer teardown()
	//
	f := NewFormat()
	c := automaton.NewConfiguration("q0", "abb", pda.NewStack("A", "Z"))
	if l := strings.Join(f.StatusLine(c), " "); l != "q0 abb A,Z" {
		t.Errorf("expected 'q0 abb A,Z', is %q", l)
	}
	c = automaton.NewConfiguration("q2", "", pda.NewStack())
	if l := strings.Join(f.StatusLine(c), " "); l != "q2 ε ε" {
		t.Errorf("expected 'q2 ε ε', is %q", l)
	}
}

func TestWriteTrail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.io")
	defer teardown()
	//
	def := readAnBn(t)
	result := explore.Run(def, "aabb")
	if !result.Accepted {
		t.Fatalf("expected anbn to accept 'aabb'")
	}
	f := NewFormat()
	lines := f.TrailLines(result.Trail)
	if len(lines) != 6 {
		t.Fatalf("expected trail of 6 configurations, has %d", len(lines))
	}
	if l := strings.Join(lines[0], " "); l != "q0 aabb Z" {
		t.Errorf("expected first line 'q0 aabb Z', is %q", l)
	}
	if l := strings.Join(lines[5], " "); l != "q2 ε Z" {
		t.Errorf("expected last line 'q2 ε Z', is %q", l)
	}
	var buf bytes.Buffer
	if err := f.WriteTrail(&buf, result.Trail); err != nil {
		t.Fatal(err)
	}
	out := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(out) != 6 {
		t.Fatalf("expected 6 lines of output, have %d:\n%s", len(out), buf.String())
	}
	if strings.Join(strings.Fields(out[2]), " ") != "q0 bb A,A,Z" {
		t.Errorf("expected third line to show 'q0 bb A,A,Z', is %q", out[2])
	}
	if strings.Index(out[0], "aabb") != strings.Index(out[5], "ε") {
		t.Errorf("expected columns to be aligned:\n%s", buf.String())
	}
}

func TestWriteDefinitionRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.io")
	defer teardown()
	//
	def := readAnBn(t)
	f := NewFormat()
	var buf bytes.Buffer
	if err := f.WriteDefinition(&buf, def); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", buf.String())
	again, err := f.Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if again.RuleCount() != def.RuleCount() {
		t.Fatalf("expected %d rules after round trip, have %d", def.RuleCount(), again.RuleCount())
	}
	for i, r := range def.Rules() {
		if !r.Equals(again.Rules()[i]) {
			t.Errorf("rule #%d differs after round trip: %s vs %s", i, r, again.Rules()[i])
		}
	}
	if again.InitialState() != def.InitialState() || again.InitialStackSymbol() != def.InitialStackSymbol() {
		t.Errorf("start differs after round trip")
	}
	if len(again.AcceptingStates()) != 1 || again.AcceptingStates()[0] != "q2" {
		t.Errorf("accepting states differ after round trip: %v", again.AcceptingStates())
	}
}

func TestWriteDefinitionWithoutAcceptingStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.io")
	defer teardown()
	//
	b := automaton.NewBuilder("none")
	b.States("q").Input('a').Stack("Z").Start("q", "Z")
	b.From("q").Reads('a').Top("Z").To("q").Push("Z")
	def, err := b.Definition()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = NewFormat().WriteDefinition(&buf, def); err == nil {
		t.Errorf("expected automaton without accepting states to be unwritable")
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing to be written, have %q", buf.String())
	}
}

func TestWriteDefinitionRejectsUnreadableNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pda.io")
	defer teardown()
	//
	var tests = []struct {
		name          string
		state, symbol string
		input         rune
	}{
		{"blank in state", "q 1", "Z", 'a'},
		{"comment in state", "q#1", "Z", 'a'},
		{"comma in stack symbol", "q", "A,B", 'a'},
		{"ε as stack symbol", "q", "ε", 'a'},
		{"comment as input", "q", "Z", '#'},
		{"ε as input", "q", "Z", 'ε'},
	}
	for _, test := range tests {
		b := automaton.NewBuilder("odd")
		b.States(test.state).Input(test.input).Stack(test.symbol)
		b.Start(test.state, test.symbol).Accepting(test.state)
		b.From(test.state).Reads(test.input).Top(test.symbol).To(test.state).Push(test.symbol)
		def, err := b.Definition()
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		var buf bytes.Buffer
		if err = NewFormat().WriteDefinition(&buf, def); err == nil {
			t.Errorf("%s: expected definition to be unwritable, wrote\n%s", test.name, buf.String())
		}
		if buf.Len() != 0 {
			t.Errorf("%s: expected nothing to be written", test.name)
		}
	}
	// with another ε-token, ε is an ordinary name
	b := automaton.NewBuilder("greek")
	b.States("q").Input('ε').Stack("ε").Start("q", "ε").Accepting("q")
	b.From("q").Reads('ε').Top("ε").To("q").Pop()
	def, err := b.Definition()
	if err != nil {
		t.Fatal(err)
	}
	f := NewFormat(EpsilonToken("-"))
	var buf bytes.Buffer
	if err = f.WriteDefinition(&buf, def); err != nil {
		t.Fatal(err)
	}
	again, err := f.Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !again.Rules()[0].Equals(def.Rules()[0]) {
		t.Errorf("rule differs after round trip: %s vs %s", again.Rules()[0], def.Rules()[0])
	}
}
