/*
Package automaton implements the static side of pushdown automata.

Building an Automaton

Automata are specified using a builder object. Clients declare states and
alphabets, then add transition rules. Every rule reads as

    (from-state, input character, top of stack) ➞ (to-state, push sequence)

Example, an automaton recognizing aⁱbⁱ (i ≥ 1) by final state:

    b := automaton.NewBuilder("anbn")
    b.States("q0", "q1").Input('a', 'b').Stack("Z", "A")
    b.Start("q0", "Z").Accepting("q1")
    b.From("q0").Reads('a').Top("Z").To("q0").Push("A", "Z")
    b.From("q0").Reads('a').Top("A").To("q0").Push("A", "A")
    b.From("q0").Reads('b').Top("A").To("q1").Pop()
    b.From("q1").Reads('b').Top("A").To("q1").Pop()
    def, err := b.Definition()

Push sequences are written top-first: Push("A", "Z") pops the top of stack and
leaves A on top of Z. An empty push sequence (Pop) just pops. Rules which read
pda.Epsilon fire without consuming input.

b.Definition() validates the automaton and returns a *DefinitionError if, for
example, a rule refers to an undeclared state. A Definition is immutable.

Configurations

A Configuration is a snapshot of a running automaton: current state, the input
not yet consumed, and the stack. Applying a rule to a configuration returns a
new configuration; configurations are never modified in place.

    c := def.InitialConfiguration("aabb")
    for _, rule := range def.Applicable(c) {
        next, _ := rule.Apply(c)
        …
    }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pda.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("pda.automaton")
}
