package pdaio

import (
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pda"
	"github.com/npillmayer/pda/automaton"
)

// Positions of the declarations within a (stripped) definition file.
const (
	fileStateSet     = 0
	fileInputAlph    = 1
	fileStackAlph    = 2
	fileInitState    = 3
	fileInitStack    = 4
	fileAcceptStates = 5
	fileTransitions  = 6 // where the transition lines begin
)

// Positions of the fields within a transition line.
const (
	tranPrevState = 0
	tranInputChar = 1
	tranStackSym  = 2
	tranNextState = 3
	tranPushSyms  = 4
	tranFieldCnt  = 5
)

// Positions of the fields within a rendered configuration.
const (
	statCurState  = 0
	statRemaining = 1
	statStack     = 2
	statFieldCnt  = 3
)

// DefaultEpsilon is the default token for ε.
const DefaultEpsilon = "ε"

// FormatError is returned for definition files which cannot be read.
type FormatError struct {
	Line int    // line number within the file, 0 if unknown
	Msg  string // what went wrong
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// Format holds the conventions for reading and rendering automata.
// The zero value is not usable; create one with NewFormat.
type Format struct {
	epsilon string // token for ε
	name    string // name for automata read
}

// Option configures a Format.
type Option func(f *Format)

// EpsilonToken sets the token representing ε. Empty tokens are ignored.
func EpsilonToken(tok string) Option {
	return func(f *Format) {
		if tok != "" {
			f.epsilon = tok
		}
	}
}

// Name sets the name of automata read. LoadDefinition defaults to the file's base name.
func Name(name string) Option {
	return func(f *Format) {
		f.name = name
	}
}

// NewFormat creates a format, applying options.
func NewFormat(opts ...Option) *Format {
	f := &Format{epsilon: DefaultEpsilon, name: "PDA"}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Epsilon returns the token representing ε.
func (f *Format) Epsilon() string {
	return f.epsilon
}

// ReadDefinition reads an automaton definition using a format created from opts.
func ReadDefinition(r io.Reader, opts ...Option) (*automaton.Definition, error) {
	return NewFormat(opts...).Read(r)
}

// LoadDefinition reads an automaton definition from a file. Unless overridden by
// an option, the automaton is named after the file.
func LoadDefinition(filename string, opts ...Option) (*automaton.Definition, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	opts = append([]Option{Name(base)}, opts...)
	f := NewFormat(opts...)
	input, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot load automaton: %w", err)
	}
	return f.parse(input)
}

// Read reads an automaton definition. It returns a *FormatError for malformed input
// and an *automaton.DefinitionError for an inconsistent automaton.
func (f *Format) Read(r io.Reader) (*automaton.Definition, error) {
	input, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read automaton: %w", err)
	}
	return f.parse(input)
}

func (f *Format) parse(input []byte) (*automaton.Definition, error) {
	lines, err := tokenizeLines(input)
	if err != nil {
		return nil, err
	}
	if len(lines) < fileTransitions {
		lineno := 0
		if len(lines) > 0 {
			lineno = lines[len(lines)-1].no
		}
		return nil, &FormatError{Line: lineno,
			Msg: fmt.Sprintf("expected %d declaration lines, found %d", fileTransitions, len(lines))}
	}
	b := automaton.NewBuilder(f.name)
	b.States(lines[fileStateSet].tokens...)
	for _, tok := range lines[fileInputAlph].tokens {
		ch, err := f.char(tok, lines[fileInputAlph].no)
		if err != nil {
			return nil, err
		}
		b.Input(ch)
	}
	b.Stack(lines[fileStackAlph].tokens...)
	initState, err := single(lines[fileInitState], "initial state")
	if err != nil {
		return nil, err
	}
	initStack, err := single(lines[fileInitStack], "initial stack symbol")
	if err != nil {
		return nil, err
	}
	b.Start(initState, initStack)
	b.Accepting(lines[fileAcceptStates].tokens...)
	for _, l := range lines[fileTransitions:] {
		rule, err := f.transition(l)
		if err != nil {
			return nil, err
		}
		b.Rule(rule)
	}
	return b.Definition()
}

func (f *Format) transition(l line) (automaton.TransitionRule, error) {
	if len(l.tokens) != tranFieldCnt {
		return automaton.TransitionRule{}, &FormatError{Line: l.no,
			Msg: fmt.Sprintf("transition needs %d fields, has %d", tranFieldCnt, len(l.tokens))}
	}
	rule := automaton.TransitionRule{
		From: pda.State(l.tokens[tranPrevState]),
		To:   pda.State(l.tokens[tranNextState]),
		Top:  pda.Symbol(l.tokens[tranStackSym]),
	}
	if tok := l.tokens[tranInputChar]; tok == f.epsilon {
		rule.Input = pda.Epsilon
	} else {
		ch, err := f.char(tok, l.no)
		if err != nil {
			return rule, err
		}
		rule.Input = ch
	}
	if push := l.tokens[tranPushSyms]; push != f.epsilon {
		for _, sym := range strings.Split(push, ",") {
			if sym == "" {
				return rule, &FormatError{Line: l.no, Msg: fmt.Sprintf("empty stack symbol in %q", push)}
			}
			rule.Push = append(rule.Push, pda.Symbol(sym))
		}
	}
	return rule, nil
}

// char converts an input token to a character, taking its first rune.
// Tokens starting with an invalid UTF-8 sequence are rejected.
func (f *Format) char(tok string, lineno int) (rune, error) {
	r, width := utf8.DecodeRuneInString(tok)
	if r == utf8.RuneError && width <= 1 {
		return r, &FormatError{Line: lineno, Msg: fmt.Sprintf("input token %q is not valid UTF-8", tok)}
	}
	if utf8.RuneCountInString(tok) > 1 {
		tracer().Infof("line %d: input token %q truncated to %q", lineno, tok, string(r))
	}
	return r, nil
}

func single(l line, what string) (string, error) {
	if len(l.tokens) != 1 {
		return "", &FormatError{Line: l.no,
			Msg: fmt.Sprintf("expected a single %s, found %d tokens", what, len(l.tokens))}
	}
	return l.tokens[0], nil
}
