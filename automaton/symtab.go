package automaton

import (
	"fmt"
	"sort"
)

// Symbol tables for the names declared by an automaton builder. There is one
// table each for states, input characters and stack symbols.

// --- Tags -------------------------------------------------------

// tag is the entry type stored into symbol tables. We do not call it 'symbol', as
// stack symbols are just one of the categories of names we have to keep track of.
type tag struct {
	name string
	kind tagKind
	refs int // number of rules referencing this tag
}

type tagKind int8

const (
	undefinedKind tagKind = iota
	stateKind
	inputKind
	stackKind
)

func (k tagKind) String() string {
	switch k {
	case stateKind:
		return "state"
	case inputKind:
		return "input character"
	case stackKind:
		return "stack symbol"
	}
	return "undefined"
}

func (t *tag) String() string {
	return fmt.Sprintf("<%s '%s':%d>", t.kind, t.name, t.refs)
}

// === Symbol Tables =========================================================

// symbolTable stores tags of a single kind (map-like semantics).
type symbolTable struct {
	table map[string]*tag
	kind  tagKind
}

func newSymbolTable(kind tagKind) *symbolTable {
	return &symbolTable{
		table: make(map[string]*tag),
		kind:  kind,
	}
}

// resolveTag checks for a tag in the symbol table. Returns a tag or nil.
func (st *symbolTable) resolveTag(name string) *tag {
	return st.table[name]
}

// defineTag creates a new tag. Defining a tag twice is harmless; the existing
// tag is kept (sets of states or symbols may mention a name more than once).
// Returns the tag and a flag, signalling whether the tag has already been present.
func (st *symbolTable) defineTag(name string) (*tag, bool) {
	if t := st.table[name]; t != nil {
		return t, true
	}
	t := &tag{name: name, kind: st.kind}
	st.table[name] = t
	return t, false
}

// reference resolves a tag and counts the reference. Returns false for undeclared
// names.
func (st *symbolTable) reference(name string) bool {
	t := st.resolveTag(name)
	if t == nil {
		return false
	}
	t.refs++
	return true
}

func (st *symbolTable) size() int {
	return len(st.table)
}

// names returns all tag names, sorted.
func (st *symbolTable) names() []string {
	nn := make([]string, 0, len(st.table))
	for name := range st.table {
		nn = append(nn, name)
	}
	sort.Strings(nn)
	return nn
}

// each iterates over the tags in name order, executing a mapper function.
func (st *symbolTable) each(mapper func(*tag)) {
	for _, name := range st.names() {
		mapper(st.table[name])
	}
}
