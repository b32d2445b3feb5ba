package pda

import (
	"strings"
)

// --- States and stack symbols ----------------------------------------------

// State is a state of an automaton. States are identified by name only, two states
// with the same name are the same state.
type State string

func (s State) String() string {
	return string(s)
}

// Symbol is an element of a stack alphabet. Stack symbols are named and may consist
// of more than one character, as opposed to input characters, which are runes.
type Symbol string

func (sym Symbol) String() string {
	return string(sym)
}

// Epsilon is the marker for "no input character". A transition rule requiring
// Epsilon as input fires without consuming input (an ε-move).
const Epsilon rune = 0

// IsEpsilon is a small helper to check for the ε-marker.
func IsEpsilon(r rune) bool {
	return r == Epsilon
}

// CompareStates is a comparator for states (lexicographic by name).
func CompareStates(a, b State) int {
	return strings.Compare(string(a), string(b))
}

// CompareSymbols is a comparator for stack symbols (lexicographic by name).
func CompareSymbols(a, b Symbol) int {
	return strings.Compare(string(a), string(b))
}

// CompareSymbolSeq compares two sequences of stack symbols lexicographically,
// with a shorter sequence ordered before a longer one sharing its prefix.
func CompareSymbolSeq(a, b []Symbol) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := CompareSymbols(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// --- Stacks -----------------------------------------------------------

// Stack is an immutable stack of symbols. Internally the bottom of the stack is
// at index 0 and the top of stack (TOS) is the last element. Operations never
// modify a stack in place but return a new one, as configurations derived from
// a common predecessor share their stacks.
//
// All externally visible renderings (String, TopFirst) list the symbols top-first.
type Stack struct {
	syms []Symbol // bottom … TOS
}

// NewStack creates a stack from symbols given top-first.
//
//    s := NewStack("A", "Z")   // A is TOS, Z at the bottom
//
func NewStack(topFirst ...Symbol) Stack {
	syms := make([]Symbol, len(topFirst))
	for i, sym := range topFirst {
		syms[len(topFirst)-1-i] = sym
	}
	return Stack{syms: syms}
}

// Depth returns the number of symbols on the stack.
func (s Stack) Depth() int {
	return len(s.syms)
}

// IsEmpty is true for a stack without symbols.
func (s Stack) IsEmpty() bool {
	return len(s.syms) == 0
}

// Top returns the top of stack, and false if the stack is empty.
func (s Stack) Top() (Symbol, bool) {
	if len(s.syms) == 0 {
		return "", false
	}
	return s.syms[len(s.syms)-1], true
}

// Replace pops the TOS and pushes a sequence of symbols. The sequence is given
// top-first, i.e. push[0] will become the new TOS. Replacing on an empty stack
// just pushes.
func (s Stack) Replace(push []Symbol) Stack {
	n := len(s.syms)
	if n > 0 {
		n--
	}
	syms := make([]Symbol, n, n+len(push))
	copy(syms, s.syms[:n])
	for i := len(push) - 1; i >= 0; i-- {
		syms = append(syms, push[i])
	}
	return Stack{syms: syms}
}

// TopFirst returns a copy of the stack's symbols, TOS first.
func (s Stack) TopFirst() []Symbol {
	r := make([]Symbol, len(s.syms))
	for i, sym := range s.syms {
		r[len(s.syms)-1-i] = sym
	}
	return r
}

// Equals compares two stacks symbol by symbol.
func (s Stack) Equals(other Stack) bool {
	if len(s.syms) != len(other.syms) {
		return false
	}
	for i := range s.syms {
		if s.syms[i] != other.syms[i] {
			return false
		}
	}
	return true
}

// String lists the stack symbols top-first, separated by commas.
func (s Stack) String() string {
	var b strings.Builder
	for i := len(s.syms) - 1; i >= 0; i-- {
		b.WriteString(string(s.syms[i]))
		if i > 0 {
			b.WriteByte(',')
		}
	}
	return b.String()
}
