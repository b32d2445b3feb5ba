package pdaio

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/npillmayer/pda"
	"github.com/npillmayer/pda/automaton"
	"github.com/npillmayer/pda/automaton/explore"
)

// TransitionLine renders a rule as a tokenized line, with fields in the same
// positions as in a definition file.
func (f *Format) TransitionLine(r *automaton.TransitionRule) []string {
	tl := make([]string, tranFieldCnt)
	tl[tranPrevState] = string(r.From)
	tl[tranNextState] = string(r.To)
	tl[tranInputChar] = f.input(r.Input)
	tl[tranStackSym] = string(r.Top)
	tl[tranPushSyms] = f.symbols(r.Push)
	return tl
}

// TransitionLines renders all the rules of an automaton.
func (f *Format) TransitionLines(def *automaton.Definition) [][]string {
	rules := def.Rules()
	lines := make([][]string, len(rules))
	for i, r := range rules {
		lines[i] = f.TransitionLine(r)
	}
	return lines
}

// StatusLine renders a configuration as a tokenized line: state, remaining input
// and stack contents (top-first).
func (f *Format) StatusLine(c automaton.Configuration) []string {
	sl := make([]string, statFieldCnt)
	sl[statCurState] = string(c.State())
	sl[statRemaining] = c.Remaining()
	if sl[statRemaining] == "" {
		sl[statRemaining] = f.epsilon
	}
	sl[statStack] = f.symbols(c.Stack().TopFirst())
	return sl
}

// TrailLines renders the configurations of a trail, one line per configuration.
func (f *Format) TrailLines(tt *explore.TraceTrail) [][]string {
	lines := make([][]string, tt.Len())
	for i := range lines {
		lines[i] = f.StatusLine(tt.At(i))
	}
	return lines
}

// WriteTable writes tokenized lines as columns, separated by blanks.
func (f *Format) WriteTable(w io.Writer, lines [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, l := range lines {
		if _, err := io.WriteString(tw, strings.Join(l, "\t")+"\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteTrail writes a trail as a table of configurations.
func (f *Format) WriteTrail(w io.Writer, tt *explore.TraceTrail) error {
	return f.WriteTable(w, f.TrailLines(tt))
}

// WriteDefinition writes an automaton in the definition file format. Reading
// the output with the same format results in an equivalent automaton.
//
// As empty lines are insignificant, automata with an empty input alphabet or
// without accepting states cannot be written. Neither can automata with names
// which would not be read back as a single token.
func (f *Format) WriteDefinition(w io.Writer, def *automaton.Definition) error {
	inputs := def.InputAlphabet()
	accepting := def.AcceptingStates()
	if len(inputs) == 0 || len(accepting) == 0 {
		return fmt.Errorf("automaton %s: cannot write empty input alphabet or accepting set", def.Name())
	}
	if err := f.checkNames(def); err != nil {
		return err
	}
	chars := make([]string, len(inputs))
	for i, ch := range inputs {
		chars[i] = string(ch)
	}
	syms := def.StackAlphabet()
	var b strings.Builder
	fmt.Fprintf(&b, "# automaton %s\n", strings.Join(strings.Fields(def.Name()), " "))
	b.WriteString(strings.Join(stateNames(def.States()), " ") + "\n")
	b.WriteString(strings.Join(chars, " ") + "\n")
	b.WriteString(strings.Join(symbolNames(syms), " ") + "\n")
	b.WriteString(string(def.InitialState()) + "\n")
	b.WriteString(string(def.InitialStackSymbol()) + "\n")
	b.WriteString(strings.Join(stateNames(accepting), " ") + "\n")
	b.WriteString("# from input top to push\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return f.WriteTable(w, f.TransitionLines(def))
}

// separators are characters which end a token in a definition file
const separators = " \t\r\n#"

// checkNames makes sure every name of an automaton is read back as the token
// it has been written as.
func (f *Format) checkNames(def *automaton.Definition) error {
	bad := func(what, name, seps string) error {
		if name == "" || strings.ContainsAny(name, seps) {
			return fmt.Errorf("automaton %s: %s %q cannot be written as a single token", def.Name(), what, name)
		}
		return nil
	}
	for _, s := range def.States() {
		if err := bad("state", string(s), separators); err != nil {
			return err
		}
	}
	for _, sym := range def.StackAlphabet() {
		if err := bad("stack symbol", string(sym), separators+","); err != nil {
			return err
		}
		if string(sym) == f.epsilon {
			return fmt.Errorf("automaton %s: stack symbol %q collides with the ε-token", def.Name(), sym)
		}
	}
	for _, ch := range def.InputAlphabet() {
		if err := bad("input character", string(ch), separators); err != nil {
			return err
		}
		if string(ch) == f.epsilon {
			return fmt.Errorf("automaton %s: input character %q collides with the ε-token", def.Name(), ch)
		}
	}
	return nil
}

func (f *Format) input(ch rune) string {
	if ch == pda.Epsilon {
		return f.epsilon
	}
	return string(ch)
}

func (f *Format) symbols(syms []pda.Symbol) string {
	if len(syms) == 0 {
		return f.epsilon
	}
	return strings.Join(symbolNames(syms), ",")
}

func symbolNames(syms []pda.Symbol) []string {
	names := make([]string, len(syms))
	for i, sym := range syms {
		names[i] = string(sym)
	}
	return names
}

func stateNames(states []pda.State) []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = string(s)
	}
	return names
}
